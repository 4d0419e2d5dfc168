// Package logtail reads the newest lines of hansard's log file.
//
// The TUI owns the terminal, so the client and poller log to a file (see
// config log_file). `hansard logs` uses Tail to show the end of that file,
// optionally filtered to one X-Request-ID so a failed lookup can be matched
// against the API server's own access log.
//
//	lines, err := logtail.Tail(cfg.LogFile, logtail.Options{MaxLines: 50})
//
// Memory use is bounded by MaxLines: a ring buffer keeps only the newest
// matches while the file is scanned once.
package logtail
