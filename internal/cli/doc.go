// Package cli is the command-line entry point. It reads flags, YTALARM_*
// environment variables and an optional config file, then starts the window.
package cli
