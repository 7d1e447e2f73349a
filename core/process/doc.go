// Package process spawns the external programs the kiosk depends on: the
// browser and the MP3 player.
//
// Processes are fire-and-forget. Runner.Start returns as soon as the process
// exists; ExecRunner reaps it in the background but never tracks, limits or
// cancels it. StartFirst walks an ordered candidate list (e.g. chromium-browser,
// google-chrome, firefox) and uses the first binary that is installed.
package process
