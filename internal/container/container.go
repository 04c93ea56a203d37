// Package container parses the .mtreplay binary container format (v2).
//
// A replay file carries two length-prefixed JSON blocks behind a fixed
// 12-byte header (all integers little-endian, unsigned 32-bit):
//
//	0x00:4  MAGIC       -> 0x11343212
//	0x04:4  VERSION     -> 2
//	0x08:4  LEN_FIRST   -> length of the first JSON object "{...}"
//	0x0C:?  FIRST_JSON  -> exactly LEN_FIRST bytes, '{' .. '}'
//	....:4  LEN_SECOND  -> length of the second JSON array "[...]"
//	....:?  SECOND_JSON -> exactly LEN_SECOND bytes, '[' .. ']'
//
// Blocks are returned byte-for-byte. A Go string holds raw bytes, so no
// transcoding happens here; payloads that are not valid UTF-8 on their own
// survive the round trip unchanged.
package container

import (
	"encoding/binary"
	"fmt"
	"os"
)

const (
	// Magic is the format signature in the first 4 header bytes.
	Magic uint32 = 0x11343212

	// SupportedVersion is the only container version this parser accepts.
	SupportedVersion uint32 = 2

	headerSize = 12
	lenSize    = 4
)

// Header is the fixed 12-byte .mtreplay v2 header.
type Header struct {
	Magic    uint32
	Version  uint32
	FirstLen uint32
}

// Container holds the two extracted JSON blocks of one replay file.
type Container struct {
	Header Header

	// First is the metadata JSON object, byte-exact, '{' .. '}'.
	First string

	// Second is the battle-results JSON array, byte-exact, '[' .. ']'.
	Second string
}

// Pair concatenates both blocks into the canonical "[{...},[...]]" form.
// For any input accepted by Parse this is guaranteed to be valid JSON.
func (c Container) Pair() string {
	return "[" + c.First + "," + c.Second + "]"
}

// ParseHeader validates the first 12 bytes of a replay file.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < headerSize {
		return h, &FormatError{
			Offset: 0,
			Err:    ErrTruncated,
			Detail: fmt.Sprintf("file too short for header: got %d bytes, want >= %d", len(data), headerSize),
		}
	}
	h.Magic = binary.LittleEndian.Uint32(data[0:4])
	h.Version = binary.LittleEndian.Uint32(data[4:8])
	h.FirstLen = binary.LittleEndian.Uint32(data[8:12])

	if h.Magic != Magic {
		return h, &FormatError{
			Offset: 0,
			Err:    ErrBadMagic,
			Detail: fmt.Sprintf("got 0x%08X, want 0x%08X", h.Magic, Magic),
		}
	}
	if h.Version != SupportedVersion {
		return h, &FormatError{
			Offset: 4,
			Err:    ErrUnsupportedVersion,
			Detail: fmt.Sprintf("got %d, only version %d is supported", h.Version, SupportedVersion),
		}
	}
	if h.FirstLen == 0 {
		return h, &FormatError{
			Offset: 8,
			Err:    ErrZeroLength,
			Detail: "LEN_FIRST is 0",
		}
	}
	return h, nil
}

// Parse splits a raw .mtreplay buffer into its two JSON blocks.
// It is a pure function over the input; no JSON decoding happens here,
// only edge-byte validation of each block.
func Parse(data []byte) (Container, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return Container{}, err
	}

	first, afterFirst, err := readBlock(data, headerSize, int(hdr.FirstLen), '{', '}')
	if err != nil {
		return Container{}, err
	}

	if afterFirst+lenSize > len(data) {
		return Container{}, &FormatError{
			Offset: afterFirst,
			Err:    ErrTruncated,
			Detail: "missing 4-byte LEN_SECOND",
		}
	}
	secondLen := binary.LittleEndian.Uint32(data[afterFirst:])
	if secondLen == 0 {
		return Container{}, &FormatError{
			Offset: afterFirst,
			Err:    ErrZeroLength,
			Detail: "LEN_SECOND is 0",
		}
	}

	second, _, err := readBlock(data, afterFirst+lenSize, int(secondLen), '[', ']')
	if err != nil {
		return Container{}, err
	}

	return Container{Header: hdr, First: first, Second: second}, nil
}

// ParseFile reads and parses a .mtreplay file from disk.
func ParseFile(path string) (Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Container{}, fmt.Errorf("error reading replay file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Container{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// readBlock slices exactly length bytes at start and checks the edge bytes.
func readBlock(data []byte, start, length int, open, close byte) (string, int, error) {
	end := start + length
	if end > len(data) {
		return "", 0, &FormatError{
			Offset: start,
			Err:    ErrTruncated,
			Detail: fmt.Sprintf("block of %d bytes runs past end of file (%d bytes)", length, len(data)),
		}
	}
	chunk := data[start:end]
	if chunk[0] != open || chunk[len(chunk)-1] != close {
		return "", 0, &FormatError{
			Offset: start,
			Err:    ErrMalformedBlock,
			Detail: fmt.Sprintf("block edges are %q..%q, want %q..%q",
				chunk[0], chunk[len(chunk)-1], open, close),
		}
	}
	return string(chunk), end, nil
}
