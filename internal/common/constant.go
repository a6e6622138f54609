// Package common contains shared constants and sentinel errors used across
// gophnotes components.
package common

// AuthorizationHeaderName is the gRPC metadata key carrying the bearer access token.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the token in the authorization header value.
const BearerPrefix = "Bearer "
