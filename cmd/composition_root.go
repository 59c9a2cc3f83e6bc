package cmd

import (
	httpadapter "pizza/internal/adapters/in/http"
	"pizza/internal/adapters/out/memory/sessionrepo"
	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/core/ports"
	"pizza/internal/jobs"
	"pizza/internal/pkg/clock"
	"pizza/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type CompositionRoot struct {
	config   Config
	logger   *zap.Logger
	clock    clock.Clock
	sessions ports.SessionRepository
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func NewCompositionRoot(config Config, logger *zap.Logger) CompositionRoot {
	clk := clock.RealClock{}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		config:   config,
		logger:   logger,
		clock:    clk,
		sessions: sessionrepo.NewMemorySessionRepository(clk),
		registry: registry,
		metrics:  metrics.New(registry),
	}
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreateEndSessionCommandHandler() commands.EndSessionCommandHandler {
	return commands.NewEndSessionCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreateSelectItemCommandHandler() commands.SelectItemCommandHandler {
	return commands.NewSelectItemCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreateNavigateCommandHandler() commands.NavigateCommandHandler {
	return commands.NewNavigateCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreateCartLineCommandHandler() commands.CartLineCommandHandler {
	return commands.NewCartLineCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreateSetAddressCommandHandler() commands.SetAddressCommandHandler {
	return commands.NewSetAddressCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.sessions, c.logger)
}

func (c *CompositionRoot) CreateExpireSessionsCommandHandler() commands.ExpireSessionsCommandHandler {
	return commands.NewExpireSessionsCommandHandler(c.sessions, c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler()
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		StartSession: c.CreateStartSessionCommandHandler(),
		EndSession:   c.CreateEndSessionCommandHandler(),
		SelectItem:   c.CreateSelectItemCommandHandler(),
		Navigate:     c.CreateNavigateCommandHandler(),
		CartLine:     c.CreateCartLineCommandHandler(),
		SetAddress:   c.CreateSetAddressCommandHandler(),
		PlaceOrder:   c.CreatePlaceOrderCommandHandler(),
		GetSession:   c.CreateGetSessionQueryHandler(),
		GetCatalog:   c.CreateGetCatalogQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	return httpadapter.NewRouter(c.CreateServer(), c.metrics, c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateExpireSessionsCommandHandler(), jobs.Config{
		SessionIdleTimeout:   c.config.SessionIdleTimeout,
		SessionSweepSchedule: c.config.SessionSweepSchedule,
	}, c.metrics, c.logger)
}
