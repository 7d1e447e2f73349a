// Package smoke exercises a running API server with the documented requests
// (`ttrpg-pi test`). It checks status codes only.
package smoke
