// Package system provides the API's static and introspection routes.
//
// # HTTP Endpoints
//
//   - GET / : API name, version and endpoint list.
//   - GET /health : Always {"status": "ok"}, independent of config or audio files.
//   - GET /config : The config document as loaded at startup.
package system
