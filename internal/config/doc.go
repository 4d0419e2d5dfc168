// Package config loads hansard's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file as follows:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/hansard/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but a field is blank, use that field's default
//
// # Fields
//
//	api_base         = "127.0.0.1:8000"   # scheme optional, http assumed
//	request_timeout  = "5s"               # per request, Go duration syntax
//	stats_every      = "60s"              # stats banner refresh
//	log_file         = "~/.local/state/hansard/hansard.log"
//
// Paths starting with "~" are expanded against the user's home directory.
// A malformed file or an unparseable duration is an error; a missing file
// is not.
package config
