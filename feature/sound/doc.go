// Package sound implements the sound dispatcher and its play endpoints.
//
// A request names a button slot (1–8). The Service rejects out-of-range
// selectors, then unconfigured slots, then missing files, and only then starts
// the external player, returning as soon as the process is launched. Requests
// are not serialised: two presses in quick succession play on top of each other.
//
// # HTTP Endpoints
//
//   - GET /play/:button : Play the sound for a button.
//   - POST /play : Same, with {"button": n} in the body.
//
// # Status Codes
//
//   - 200: playback started
//   - 400: invalid button number or malformed body
//   - 404: slot not configured, or its file is missing
//   - 500: the player could not be started
package sound
