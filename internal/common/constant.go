// Package common contains shared constants and sentinel errors used across
// the press kit server and its admin tooling.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on inbound requests.
const AccessTokenHeaderName = "access_token"

// MinPasswordLength is the shortest plaintext credential accepted on
// registration, password change and reset.
const MinPasswordLength = 8
