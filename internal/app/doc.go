// Package app is the composition root for the panesplit demo.
//
// # Startup
//
//  1. Load the layout config (config.Load); flags override its log file and
//     refresh interval
//  2. Open the structured log file; diagnostics never go to the terminal,
//     which belongs to the alternate screen
//  3. Load prefs for the theme name
//  4. Read every pane's content file once, then start the content watcher
//     in the background
//  5. Run the Bubble Tea UI until the user quits or ctx is cancelled
//
// # Shutdown
//
// Run cancels its derived context when the UI exits, which stops the
// watcher goroutine. A cancelled parent context is reported as ctx.Err() so
// callers can distinguish interrupts from failures.
package app
