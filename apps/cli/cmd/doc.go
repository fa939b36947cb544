// Package cmd implements the toolbox CLI commands using Cobra.
//
// Available commands:
//   - call: Evaluate one or more toolbox expressions
//   - list: Display the registered functions
//   - check: Run check files and report pass/fail per check
//   - validate: Check check-file syntax without evaluating
//   - bench: Measure the latency of one expression
//   - init: Create a config file and an example check file
//   - version: Show toolbox version information
//
// Settings come from a config file, a .env file, TOOLBOX_* environment
// variables and persistent flags, in increasing order of precedence.
package cmd
