// Package errors provides the typed error taxonomy shared by seqkit packages.
// Every failure carries a machine-readable ErrorCode so callers can match it
// with the standard library's errors.Is against the exported sentinels.
package errors
