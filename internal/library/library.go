// Package library tracks the patterns a network has been trained on, stored
// as roaring bitmaps of their set bits. It backs content-addressable
// identification: given a settled state, which stored pattern is it?
package library

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Library holds the registered patterns of one network.
type Library struct {
	n       int
	entries []*roaring.Bitmap
}

// New creates an empty library for patterns of length n.
func New(n int) *Library {
	return &Library{n: n}
}

// FromBitmaps rebuilds a library from persisted bitmaps.
func FromBitmaps(n int, bitmaps []*roaring.Bitmap) *Library {
	return &Library{n: n, entries: bitmaps}
}

// Add registers a pattern and returns its id. Ids are dense and assigned in
// registration order.
func (l *Library) Add(p []byte) int {
	l.entries = append(l.entries, toBitmap(p))
	return len(l.entries) - 1
}

// Len returns the number of registered patterns.
func (l *Library) Len() int { return len(l.entries) }

// Reset drops all registered patterns.
func (l *Library) Reset() { l.entries = nil }

// Pattern reconstructs the registered pattern with the given id.
func (l *Library) Pattern(id int) ([]byte, bool) {
	if id < 0 || id >= len(l.entries) {
		return nil, false
	}
	p := make([]byte, l.n)
	l.entries[id].Iterate(func(x uint32) bool {
		p[x] = 1
		return true
	})
	return p, true
}

// Nearest returns the id and Hamming distance of the registered pattern
// closest to p. Distance is the XOR cardinality of the two bit sets.
func (l *Library) Nearest(p []byte) (id int, distance uint64, ok bool) {
	if len(l.entries) == 0 {
		return -1, 0, false
	}

	query := toBitmap(p)
	best := -1
	var bestDist uint64
	for i, e := range l.entries {
		d := roaring.Xor(query, e).GetCardinality()
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist, true
}

// Bitmaps exposes the raw bitmaps for serialization. Read-only.
func (l *Library) Bitmaps() []*roaring.Bitmap { return l.entries }

func toBitmap(p []byte) *roaring.Bitmap {
	bm := roaring.New()
	for i, v := range p {
		if v == 1 {
			bm.Add(uint32(i))
		}
	}
	return bm
}
