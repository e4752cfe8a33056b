// Package buffer implements the document model for kiln: rows of text with
// derived tab-expanded render forms, grapheme-accurate editing and movement,
// and the incremental-search state machine.
//
// Logical positions are (row, byte offset), with offsets always on
// grapheme-cluster boundaries. Render columns are a separate type and
// conversions between the two are explicit.
package buffer
