// Package text turns raw user input into the A–Z alphabet the cipher works on
// and formats cipher output for display.
//
// Normalisation decomposes accented letters and drops their marks, so "é"
// becomes "E", and applies full Unicode upper-casing, so "ß" becomes "SS".
// Whitespace is always dropped. Other characters are dropped in lenient mode
// and rejected in strict mode.
package text
