// Package config loads the panesplit layout file.
//
// # Resolution
//
//  1. If a path is given, use it
//  2. Otherwise use ~/.config/panesplit/layout.toml
//  3. If the file does not exist, use Default: two equal panes, horizontal
//  4. Blank or zero fields keep their defaults
//
// An unreadable file, invalid TOML, or an unknown direction is an error.
//
// # TOML Format
//
//	direction = "vertical"      # horizontal (default) or vertical
//	keyboard_step = 5           # percent per arrow press, floor 0.1
//	item_min_size = 10          # applies to panes without their own bounds
//	item_max_size = 90
//	disabled = false
//	sizes = [30, 70]            # initial controlled vector
//	log_file = "~/.local/share/panesplit/panesplit.log"
//	refresh_seconds = 2
//
//	[[pane]]
//	key = "syslog"
//	title = "System log"
//	default_size = 2            # relative weight
//	min_size = 20
//	file = "/var/log/syslog"
//
// Panes without a key get "pane-N" from their position, and the title
// defaults to the key. Paths starting with ~ are expanded against the home
// directory and made absolute.
package config
