// Package cli implements the mgpustat command-line interface.
//
// The root command takes no arguments:
//
//	mgpustat [-i|--interval <seconds>] [--plain]
//	mgpustat version [--short]
//
// Running the root command resolves the configuration through the config
// package, validates sudo credentials with a single interactive 'sudo -v',
// then hands control to the monitor package. On a terminal the full-screen
// Bubble Tea dashboard is used; otherwise, or with --plain, frames are
// printed by the plain refresh loop.
//
// # Exit Status
//
// Execute maps errors to exit codes:
//
//	0   - normal exit (version, --help)
//	1   - configuration, privilege or collection failure
//	130 - interrupted with Ctrl+C, SIGTERM or q
//
// Structured errors from the errors package are printed to stderr as-is.
package cli
