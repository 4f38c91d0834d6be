// Package aethokit is the Go client for the Aethokit Gas Sponsorship API.
//
// Files:
//   client.go   - Client struct, configuration, New, API operations
//   request.go  - HTTP request execution and response classification
//   types.go    - Wire-format request/response structs
//   errors.go   - Error taxonomy (ErrMissingGasKey, TransportError, ...)
//
// Usage:
//   client, err := aethokit.New(aethokit.Config{GasKey: key})
//   address, err := client.GetGasAddress(ctx)
//   hash, err := client.SponsorTx(ctx, serializedTx)
package aethokit
