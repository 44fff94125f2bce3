// Package match suggests the field identifier a misspelled name was most
// likely meant to be.
//
// Names are compared after normalization (case folded, separators removed)
// by normalized Levenshtein similarity. Suggestions are for humans reading
// diagnostics; dispatch itself only ever matches names exactly.
package match
