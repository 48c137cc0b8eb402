// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the card, review and progress services to
// JSON over HTTP; routing lives in cmd/server.
//
// Every error response has the shape {"error": "...", "trace_id": "..."}.
// Status codes come from MapErrorToStatusCode and client-facing messages from
// GetSafeErrorMessage, so internal error text never reaches a client.
package api
