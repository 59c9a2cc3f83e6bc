// Package commands contains the operations that change an ordering session.
// Every command is a validated value built through its constructor; every
// handler loads the session from the SessionRepository, applies the command
// to the order.Controller under the session lock and logs the outcome.
package commands
