// Package kernel provides the value objects shared by the ordering domain:
//   - UUID: identifiers for sessions and order confirmations
//   - Address: a validated delivery address
//
// Both are immutable and reject their zero value through Validate.
package kernel
