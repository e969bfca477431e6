// Package client contains the remote API contract of the OliLab backend.
//
// # Overview
//
// The package provides:
//  1. The transport-agnostic Client interface used by the session and
//     inventory layers: Login and FetchUsers.
//  2. HTTPClient, the JSON-over-HTTP implementation talking to
//     POST /api/auth/login and GET /api/data.
//
// # Error Handling
//
// A non-2xx answer becomes *APIError whose Error() is the server message
// verbatim, ready for display. Status classes are matchable with errors.Is:
// ErrUnauthorized (401), ErrForbidden (403, e.g. account not approved),
// ErrUnavailable (gateway errors and transport failures).
package client
