// Package assets locates the pre-rendered glyph files a phrase needs.
//
// Word glyphs live in one directory, one file per word or hyphenated
// compound, named "<word prefix><token>.svg". Syllable glyphs live in a
// second directory, one file per syllable asset key (null-onset and nasal
// variants included), named "<syllable prefix><key>.svg".
//
// A missing or unreadable glyph is reported with [errors.ErrCodeAssetNotFound]
// or [errors.ErrCodeInvalidAsset]; callers skip the placement and carry on.
//
// The package also builds the Wikimedia Commons links listed as provenance in
// composed files.
package assets
