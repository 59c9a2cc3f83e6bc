package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizza/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCompositionRoot_CreateRouter(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{
		HTTPPort:             "8080",
		AppEnv:               "development",
		SessionIdleTimeout:   time.Minute,
		SessionSweepSchedule: "0 * * * * *",
	}, zap.NewNop())
	e := root.CreateRouter()

	for _, path := range []string{"/health", "/api/v1/catalog", "/metrics"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{
		SessionIdleTimeout:   time.Minute,
		SessionSweepSchedule: "0 * * * * *",
	}, zap.NewNop())

	jm, err := root.CreateJobManager()
	require.NoError(t, err)
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
