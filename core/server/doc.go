// Package server builds the Fiber application that hosts the kiosk API.
//
// New wires the global middleware (RayID, request logging), the Swagger UI at
// /swagger/* and a JSON error handler, so that even unknown routes answer with
// an {error, message} body. Feature routes are attached later through the
// core/loader Manager.
//
// # Configuration
//
// The Config struct defines the bind host and the graceful shutdown timeout.
// The port itself is a top-level key of the config document.
package server
