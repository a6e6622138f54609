// Package client is the gRPC client for the gophnotes server.
//
// GRPCClient keeps the current token pair, attaches the access token to
// note calls, and on an Unauthenticated reply redeems the refresh token
// once and retries the call. Status codes are mapped to the sentinel
// errors in errors.go so callers can use errors.Is.
package client
