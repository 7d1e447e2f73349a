// Package buttons implements the standalone button listener (`run-listener`).
//
// One watcher goroutine per configured pin blocks in periph's WaitForEdge and,
// on a debounced press, issues GET {api_url}/{n} to the API server. The
// listener shares nothing with the server except loopback HTTP; request
// failures are logged and otherwise ignored.
//
// # Wiring
//
// The default BCM mapping is 1→2, 2→3, 3→4, 4→17, 5→27, 6→22, 7→10, 8→9, with
// each button between its pin and ground.
package buttons
