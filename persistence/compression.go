package persistence

import (
	"encoding/binary"
	"errors"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType selects the payload compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

func (c CompressionType) valid() bool {
	return c <= CompressionZSTD
}

// ZSTD encoder/decoder pools for efficiency.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Block framing: [UncompressedSize uint32][CompressedSize uint32][Data...].
// CompressedSize == 0 means the data is stored raw, which also happens when
// compression does not pay (ratio > 0.9).
const blockHeaderSize = 8

// writeBlock compresses data with the given algorithm and writes one framed
// block to w.
func writeBlock(w io.Writer, data []byte, compression CompressionType) error {
	if !compression.valid() {
		return ErrInvalidCompression
	}

	var compressed []byte
	var err error

	switch compression {
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	}
	if err != nil {
		return err
	}

	var header [blockHeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:], uint32(len(data)))

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		// Raw storage.
		if _, err := w.Write(header[:]); err != nil {
			return err
		}
		_, err := w.Write(data)
		return err
	}

	binary.LittleEndian.PutUint32(header[4:], uint32(len(compressed)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = w.Write(compressed)
	return err
}

// readBlock reads one framed block from r and returns the decompressed data.
func readBlock(r io.Reader, compression CompressionType) ([]byte, error) {
	var header [blockHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}

	uncompressedSize := binary.LittleEndian.Uint32(header[0:])
	compressedSize := binary.LittleEndian.Uint32(header[4:])

	// A corrupt frame must not drive the allocations below.
	if uncompressedSize > maxPayloadSize || compressedSize > maxPayloadSize {
		return nil, ErrBlockTooLarge
	}

	if compressedSize == 0 {
		data := make([]byte, uncompressedSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}
		return data, nil
	}

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, err
	}

	result := make([]byte, uncompressedSize)
	switch compression {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressed, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(compressed, result[:0])
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, ErrInvalidCompression
	}
}

// compressLZ4 compresses data using LZ4. A nil result means incompressible.
func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return compressed[:n], nil
}
