package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"
)

// Snapshot is the serializable state of a trained network.
type Snapshot struct {
	Size      int
	Threshold float32
	MaxPasses int
	Weights   []float32
	Patterns  []*roaring.Bitmap
}

// WriteSnapshot serializes snap to w: header, one compressed payload block
// (weights, then length-prefixed pattern bitmaps), CRC32 trailer.
func WriteSnapshot(w io.Writer, snap *Snapshot, compression CompressionType) error {
	if !compression.valid() {
		return ErrInvalidCompression
	}
	if snap.Size <= 0 || snap.Size > MaxSize {
		return fmt.Errorf("%w: %d units", ErrSizeOutOfRange, snap.Size)
	}

	cw := NewChecksumWriter(w)

	header := FileHeader{
		Magic:        MagicNumber,
		Version:      Version,
		Compression:  uint8(compression),
		Size:         uint32(snap.Size),
		Threshold:    snap.Threshold,
		MaxPasses:    uint32(snap.MaxPasses),
		PatternCount: uint32(len(snap.Patterns)),
	}
	if err := binary.Write(cw, byteOrder, &header); err != nil {
		return err
	}

	var payload bytes.Buffer
	bw := NewBinaryWriter(&payload)
	if err := bw.WriteFloat32Slice(snap.Weights); err != nil {
		return err
	}
	for _, bm := range snap.Patterns {
		b, err := bm.ToBytes()
		if err != nil {
			return err
		}
		if err := bw.WriteBytes(b); err != nil {
			return err
		}
	}

	if err := writeBlock(cw, payload.Bytes(), compression); err != nil {
		return err
	}

	// Trailer goes to the underlying writer so it is not part of its own sum.
	return binary.Write(w, byteOrder, cw.Sum())
}

// ReadSnapshot deserializes a snapshot written by WriteSnapshot, verifying
// magic, version and checksum.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	cr := NewChecksumReader(r)

	var header FileHeader
	if err := binary.Read(cr, byteOrder, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	compression := CompressionType(header.Compression)
	if !compression.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, header.Compression)
	}
	if header.Size == 0 || header.Size > MaxSize {
		return nil, fmt.Errorf("%w: %d units", ErrSizeOutOfRange, header.Size)
	}

	payload, err := readBlock(cr, compression)
	if err != nil {
		return nil, err
	}

	// Each pattern blob needs at least its length prefix in the payload.
	if uint64(header.PatternCount) > uint64(len(payload))/4 {
		return nil, fmt.Errorf("%w: %d patterns", ErrSizeOutOfRange, header.PatternCount)
	}

	var trailer uint32
	if err := binary.Read(r, byteOrder, &trailer); err != nil {
		return nil, err
	}
	if err := cr.Verify(trailer); err != nil {
		return nil, err
	}

	n := int(header.Size)
	br := NewBinaryReader(bytes.NewReader(payload))
	weights, err := br.ReadFloat32Slice(n * n)
	if err != nil {
		return nil, err
	}

	patterns := make([]*roaring.Bitmap, header.PatternCount)
	for i := range patterns {
		b, err := br.ReadBytes()
		if err != nil {
			return nil, err
		}
		bm := roaring.New()
		if err := bm.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		patterns[i] = bm
	}

	return &Snapshot{
		Size:      n,
		Threshold: header.Threshold,
		MaxPasses: int(header.MaxPasses),
		Weights:   weights,
		Patterns:  patterns,
	}, nil
}
