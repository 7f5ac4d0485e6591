// Package api wraps the remote spreadsheet endpoint. The endpoint is a
// single URL speaking an action-dispatch protocol: reads are GET requests
// with an action query parameter, writes are POSTs with a text/plain JSON
// body and a one-shot GET fallback for deployments whose infrastructure
// blocks cross-origin POSTs. Responses share one envelope:
//
//	{success: bool, data?: any, error?: string}
//
// Failures are classified as ErrNotConfigured (no endpoint set),
// TransportError (network or HTTP status) or APIError (success=false).
package api
