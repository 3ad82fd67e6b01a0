// Package persistence implements the binary snapshot format for trained
// networks.
//
// A snapshot is a self-contained blob: a fixed-size header (magic, version,
// compression, network geometry), a single compressed payload block holding
// the weight matrix and the registered pattern bitmaps, and a CRC32 trailer
// over everything before it. Codec selection is a breaking-change boundary:
// bytes written with one format version may not decode under another.
package persistence
