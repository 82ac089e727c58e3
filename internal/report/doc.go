// Package report condenses an Open ICS lint report into file, warning and
// error counts.
//
// Two report shapes are understood: a JSON array of per-file records with
// "warnings" and "errors" arrays, and a single object carrying the totals
// "files_scanned", "warnings" and "errors". Anything unreadable summarizes
// to zeros; the accompanying error only says why.
package report
