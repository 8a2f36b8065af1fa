// Package audio provides ID3 tag inspection for fuzzy-match
// verification.
//
// It uses the id3v2 library to read the title and artist frames of an
// MP3 that a fuzzy filesystem search matched, so the converter can warn
// when the match looks wrong:
//
//	checker := audio.NewTagChecker()
//	if !checker.Check(path, "Digital Love", "Daft Punk") {
//	    // warn: tags disagree with library metadata
//	}
package audio
