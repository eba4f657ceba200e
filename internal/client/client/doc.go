// Package client is the client-side API layer of the reservation backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with one
//     method per backend endpoint: login, profile, document types,
//     reservations, available vehicles and branches.
//  2. A concrete REST implementation (see HTTPClient) that issues JSON
//     requests against one base URL, tags each with an X-Request-ID and
//     attaches the bearer token according to an AuthPolicy.
//
// # Auth policy
//
// The deployed backend only checks the token on reservation list, fetch and
// delete. ObservedAuthPolicy reproduces that; AllEndpointsAuthPolicy sends
// the token everywhere except login.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are *APIError
// values which match ErrUnauthorized and ErrNotFound with errors.Is.
// Undecodable bodies wrap ErrBadResponse. There is no retry.
package client
