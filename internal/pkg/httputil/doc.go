// Package httputil provides shared HTTP response utilities for handlers.
//
// Every handler file should use these helpers instead of writing raw
// http.ResponseWriter calls. This keeps the JSON envelope, error structure,
// and server-side error logging consistent across all endpoints.
package httputil
