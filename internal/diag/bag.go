package diag

import (
	"sort"

	"fortio.org/safecast"
)

// Bag accumulates diagnostics in source order up to a fixed capacity.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag that holds at most max diagnostics. The capacity is
// clamped to at least one so the first error is always recorded and
// HasErrors stays a reliable had-errors flag.
func NewBag(max int) *Bag {
	capped, err := safecast.Conv[uint16](max)
	if err != nil {
		capped = ^uint16(0)
	}
	if capped == 0 {
		capped = 1
	}
	return &Bag{
		items: make([]Diagnostic, 0, capped),
		max:   capped,
	}
}

// Add appends a diagnostic. Returns false when the bag is full; the
// diagnostic is dropped but the run continues.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the bag capacity.
func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether at least one SevError diagnostic was recorded.
// Once true it stays true; nothing ever removes items from a bag.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether at least one warning-or-worse was recorded.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Len returns the number of recorded diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the recorded diagnostics. The slice aliases the bag's
// internal storage; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends all diagnostics from other, growing capacity if needed.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if total, err := safecast.Conv[uint16](newTotal); err == nil && total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
}

// Dedup drops exact duplicates (same code, span, severity and message).
// Expects a sorted bag; duplicates are adjacent after Sort.
func (b *Bag) Dedup() {
	if len(b.items) < 2 {
		return
	}
	out := b.items[:1]
	for _, d := range b.items[1:] {
		prev := out[len(out)-1]
		if d.Code == prev.Code && d.Primary == prev.Primary &&
			d.Severity == prev.Severity && d.Message == prev.Message {
			continue
		}
		out = append(out, d)
	}
	b.items = out
}

// Sort orders diagnostics by file, start, end, severity (desc), code for a
// deterministic rendering order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
