// Package jwt is the credential-verification boundary of the request
// pipeline. It validates HS256-signed bearer tokens and hands the decoded
// claim set to the rest of the pipeline as a map[string]any; everything past
// this package consumes claims, not tokens.
//
// The middleware is deliberately lenient about absence: a request with no
// Authorization header continues without claims, and the tenant enforcement
// gate decides whether that request may proceed. Only a present-but-invalid
// credential is rejected here.
//
// Sign exists so tests and local development can mint tokens without an
// identity provider; production tokens come from the external issuer.
package jwt
