// Package syllabary prepares the syllable glyph directory.
//
// Syllable glyphs are drawn together on one master sheet: each syllable is a
// top-level <g> with an id and a translate transform. [Slice] cuts the sheet
// into one file per syllable, either tightly padded or at a shared uniform
// width so that every syllable occupies the same horizontal slot. Uniform
// slices are what the compositor expects.
//
// [NasalVariants] then derives the "-n" syllables (man, nen, ...) by copying
// the nasal marker from an existing nasal glyph onto every other syllable.
//
// Both operations write documents through [svgdoc], so Inkscape and Sodipodi
// attributes survive untouched.
package syllabary
