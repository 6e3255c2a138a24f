// Package titleparse extracts structured tag data from the free-form
// titles media files come with.
//
// Parsing runs in two phases. A small set of whole-title layout
// patterns splits the string into artists, title and, where present,
// track number and genre. A catch-all pass then repeatedly claims
// decorations from the remaining title: featured-artist clauses,
// release years, remix labels, album markers and filler like
// "(Official Video)", removing each one until only the bare song title
// is left.
package titleparse
