package persistence

import "errors"

const (
	// MagicNumber identifies hopgo snapshot files (ASCII: "HOP0").
	MagicNumber = 0x484F5030
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000

	// MaxSize caps the unit count a snapshot may declare. Keeps the dense
	// N×N float32 weight block within 1 GiB and the product N*N inside int
	// range, so a crafted header cannot drive allocations.
	MaxSize = 16384

	// maxPayloadSize bounds any single payload block allocation.
	maxPayloadSize = 1 << 30
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unknown compression type")
	ErrSizeOutOfRange     = errors.New("snapshot size out of range")
	ErrBlockTooLarge      = errors.New("payload block exceeds size limit")
)

// FileHeader is the fixed-size header at the start of every snapshot.
type FileHeader struct {
	Magic        uint32 // 0x484F5030 ("HOP0")
	Version      uint32 // Snapshot format version
	Compression  uint8  // CompressionType of the payload block
	Padding      [3]byte
	Size         uint32  // Unit count N (weights are N×N float32)
	Threshold    float32 // Uniform activation threshold
	MaxPasses    uint32  // Relaxation pass bound, 0 = unbounded
	PatternCount uint32  // Registered pattern bitmaps in the payload
	Reserved     [8]byte // Future use
}
