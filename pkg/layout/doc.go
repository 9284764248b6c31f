// Package layout positions glyphs on a fixed-height canvas.
//
// Every glyph is scaled so that its native height maps onto the target height;
// widths follow from each glyph's aspect ratio and drive left-to-right
// packing with a fixed gap. Word glyphs are placed one by one. A proper name
// is set as a single unit: a cartouche frame whose center segment is tiled
// once per syllable, with each syllable centered in its segment slightly
// smaller than the frame.
//
// The resulting [Canvas] lists placements in draw order: words, then frame
// pieces, then syllables, so that syllables render above the frame.
package layout
