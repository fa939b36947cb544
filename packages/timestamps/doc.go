// Package timestamps renders points in time as chat timestamp markup tokens.
//
// Every token has the form <t:{unixSeconds}:{code}>, where code selects how
// the chat client displays the time:
//   - RELATIVE   (R): "in 2 hours", "3 days ago"
//   - DATE       (D): long date
//   - TIME       (T): long time
//   - SHORT_TIME (t): short time
//   - FULL       (F): long date with time (the default)
//
// Unrecognized formats are rejected with an invalid-argument error.
package timestamps
