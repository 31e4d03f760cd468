// internal/report/constants.go
package report

// Process exit codes.
// These values define the CLI contract and MUST NOT be configurable.

// ExitOK means both catalogs were clean and outputs were written.
const ExitOK = 0

// ExitFailure covers usage errors, fatal errors and validation findings alike.
const ExitFailure = 1
