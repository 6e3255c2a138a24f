// Package audio reads and writes audio file metadata.
//
// ReadTags gives a format-agnostic view of whatever tags a file
// already carries (ID3, MP4, FLAC and friends via dhowden/tag), which
// the review session shows next to each proposal. WriteTags persists
// an accepted proposal as ID3v2 frames, and Rename moves the file to
// its sanitized name while keeping the extension.
package audio
