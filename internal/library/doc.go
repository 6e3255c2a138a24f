// Package library runs the passes that keep a music library in shape.
//
// The Processor chains four steps, each usable on its own: Download
// fetches new files into the input directory with yt-dlp, Tag parses
// each file's title into a tag proposal and reviews it interactively,
// Deposit files the results into the library (flat, A-Z, or by date),
// and Clean prunes directories the other steps left empty. Add queues
// URLs or search terms for the next Download.
package library
