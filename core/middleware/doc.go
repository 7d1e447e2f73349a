// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs method, path, status and latency of every request
//     through Zap, tagged with the RayID.
//
// Both are registered globally by core/server; the API has no authentication.
package middleware
