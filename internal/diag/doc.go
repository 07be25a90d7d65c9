// Package diag accumulates recoverable diagnostics produced while scanning.
// Tokens and diagnostics travel in separate ordered collections; a malformed
// character never aborts a run, it only lands in the Bag.
package diag
