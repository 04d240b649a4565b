// Package logs stores the log entries of every account in a single JSON
// array. All operations are scoped to the account passed in as active:
// reads only see that account's entries and writes stamp or check its id.
package logs
