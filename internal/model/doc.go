// Package model defines the tag proposal that flows through the whole
// application.
//
// # Proposal
//
// Proposal holds the tag values extracted from a title (or entered in
// the edit loop) together with the title and filename derived from
// them:
//
//	p := titleparse.New(false, nil).Parse("Artist ft. Band - Song (2024) [Radio Edit]")
//	p.Update(model.DefaultTitleTemplate, model.DefaultFilenameTemplate)
//	fmt.Println(p.FinalTitle) // "Song (Band) [Radio Edit]"
//	fmt.Println(p.Filename)   // "Artist - Song (Band) [Radio Edit]"
//
// # Templates
//
// Update renders two templates with literal token substitution:
//
//	{artist} {feat} {title} {remix} {year} {track} {album} {album_artist} {genre}
//
// Unset fields render as empty strings; bracket pairs and double spaces
// left behind by empty tokens are cleaned up afterwards, so the default
// title template "{title} ({feat}) [{remix}]" degrades gracefully when
// a song has no features and no remix label.
package model
