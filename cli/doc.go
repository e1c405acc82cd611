// Package cli wires the handlekit command line: flag parsing with env
// defaults, names-file intake, batch execution and txt/CSV output writing.
// Exit codes: 0 success, 1 usage or config error, 2 run with no results.
package cli
