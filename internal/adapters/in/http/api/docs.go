// Package api describes the HTTP surface of the ordering service: the
// OpenAPI document, its request and response bodies, and the routing glue
// that binds path parameters and dispatches to a ServerInterface.
//
// The OpenAPI document is embedded, validated on load with kin-openapi and
// registered with swag so echo-swagger can serve it at /swagger/.
package api
