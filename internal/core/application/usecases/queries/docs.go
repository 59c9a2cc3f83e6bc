// Package queries contains read-only views of ordering sessions and the
// pizza catalog.
package queries
