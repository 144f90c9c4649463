// Package fix provides text edit types and application logic for auto-fixing.
//
// Edits are queued during an analysis pass and applied afterwards; nothing in
// this package mutates a buffer while rules are still probing it, so ranges
// computed during the pass stay valid until application time.
package fix

import "github.com/yaklabco/spacelint/pkg/source"

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// Start is the byte index where the edit begins (inclusive).
	Start int

	// End is the byte index where the edit ends (exclusive).
	End int

	// NewText is the replacement text. Empty for pure deletions.
	NewText string
}

// IsInsert returns true for zero-width edits that add text.
func (e TextEdit) IsInsert() bool {
	return e.Start == e.End && e.NewText != ""
}

// IsDelete returns true for edits that remove text without replacement.
func (e TextEdit) IsDelete() bool {
	return e.Start < e.End && e.NewText == ""
}

// EditBuilder accumulates text edits for a single buffer.
// It performs no conflict resolution; see PrepareEdits and friends.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]TextEdit, 0),
	}
}

// Replace adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) Replace(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		Start:   start,
		End:     end,
		NewText: newText,
	})
}

// InsertAt adds an edit that inserts text at the given offset.
func (b *EditBuilder) InsertAt(offset int, text string) {
	b.Replace(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.Replace(start, end, "")
}

// DeleteRange adds an edit that deletes the given source range.
// Empty ranges are ignored so probing code can delete unconditionally.
func (b *EditBuilder) DeleteRange(r source.Range) {
	if r.IsEmpty() {
		return
	}
	b.Delete(r.Start, r.End)
}

// Len returns the number of queued edits.
func (b *EditBuilder) Len() int {
	return len(b.Edits)
}
