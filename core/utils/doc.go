// Package utils provides cell-level conversion helpers for spreadsheet data.
//
// Every table cell arrives as a string; these helpers normalize them into
// typed values with lossy-but-safe defaults (0 for numbers, false for
// booleans) so a malformed sheet can never fail a load.
package utils
