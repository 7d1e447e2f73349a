// Package browser launches the kiosk browser pointed at the configured website.
//
// Unless browser.command is set, chromium-browser, google-chrome and firefox are
// tried in that order, each with its kiosk flags. The process is started once at
// startup and then forgotten.
package browser
