package persistence

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"unsafe"
)

var byteOrder = binary.LittleEndian

// BinaryWriter writes snapshot sections in raw little-endian format.
type BinaryWriter struct {
	w io.Writer
}

// NewBinaryWriter creates a new binary writer.
func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: w}
}

// WriteUint32 writes a single uint32.
func (bw *BinaryWriter) WriteUint32(v uint32) error {
	var buf [4]byte
	byteOrder.PutUint32(buf[:], v)
	_, err := bw.w.Write(buf[:])
	return err
}

// WriteFloat32Slice writes a float32 slice as raw bytes (no allocation).
func (bw *BinaryWriter) WriteFloat32Slice(vec []float32) error {
	if len(vec) == 0 {
		return nil
	}
	if uintptr(unsafe.Pointer(&vec[0]))%4 != 0 {
		return errors.New("misaligned float32 slice")
	}
	byteSlice := unsafe.Slice((*byte)(unsafe.Pointer(&vec[0])), len(vec)*4)
	_, err := bw.w.Write(byteSlice)
	return err
}

// WriteBytes writes a length-prefixed byte slice.
func (bw *BinaryWriter) WriteBytes(b []byte) error {
	if err := bw.WriteUint32(uint32(len(b))); err != nil {
		return err
	}
	_, err := bw.w.Write(b)
	return err
}

// BinaryReader reads snapshot sections written by BinaryWriter.
type BinaryReader struct {
	r io.Reader
}

// NewBinaryReader creates a new binary reader.
func NewBinaryReader(r io.Reader) *BinaryReader {
	return &BinaryReader{r: r}
}

// ReadUint32 reads a single uint32.
func (br *BinaryReader) ReadUint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(br.r, buf[:]); err != nil {
		return 0, err
	}
	return byteOrder.Uint32(buf[:]), nil
}

// ReadFloat32Slice reads count float32 values.
func (br *BinaryReader) ReadFloat32Slice(count int) ([]float32, error) {
	if count == 0 {
		return nil, nil
	}
	vec := make([]float32, count)
	byteSlice := unsafe.Slice((*byte)(unsafe.Pointer(&vec[0])), count*4)
	if _, err := io.ReadFull(br.r, byteSlice); err != nil {
		return nil, err
	}
	return vec, nil
}

// ReadBytes reads a length-prefixed byte slice.
func (br *BinaryReader) ReadBytes() ([]byte, error) {
	n, err := br.ReadUint32()
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(br.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// SaveToFile writes a snapshot to filename atomically: temp file in the same
// directory, fsync, rename, best-effort directory sync.
func SaveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}
	tmpName = ""

	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}

// LoadFromFile reads a snapshot from filename through a buffered reader.
func LoadFromFile(filename string, readFunc func(io.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return readFunc(bufio.NewReaderSize(f, 256*1024))
}
