package strfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/hpungsan/fortune/internal/cookie"
	"github.com/hpungsan/fortune/internal/errors"
)

// trunc64 reads a value stored in the truncated 8-byte scheme.
func trunc64(b []byte) uint64 {
	return uint64(binary.BigEndian.Uint32(b))
}

// homebrewProbe is the truncated encoding of version=1.
var homebrewProbe = []byte{0, 0, 0, 1, 0, 0, 0, 0}

// Detect guesses the platform layout from fixed byte probes. The
// Homebrew check runs first since the FreeBSD and Linux discriminators
// overlap for small files. Unmatched input falls back to the host
// default layout.
func Detect(b []byte) cookie.Platform {
	switch {
	case len(b) >= 8 && bytes.Equal(b[:8], homebrewProbe):
		return cookie.PlatformHomebrew
	case len(b) >= 4 && binary.BigEndian.Uint32(b) == 1 &&
		isZero(b, 30, 34) && isZero(b, 40, 44):
		return cookie.PlatformFreeBSD
	case len(b) >= 8 && binary.BigEndian.Uint32(b) == 2 &&
		binary.BigEndian.Uint32(b[4:]) != 0 &&
		isNonzero(b, 30, 34) && isNonzero(b, 34, 38):
		return cookie.PlatformLinux
	default:
		return cookie.DefaultPlatform()
	}
}

func isZero(b []byte, lo, hi int) bool {
	if hi > len(b) {
		return false
	}
	for _, c := range b[lo:hi] {
		if c != 0 {
			return false
		}
	}
	return true
}

func isNonzero(b []byte, lo, hi int) bool {
	if hi > len(b) {
		return false
	}
	for _, c := range b[lo:hi] {
		if c != 0 {
			return true
		}
	}
	return false
}

// Decode parses an index in the given platform layout. Cookies carry
// offsets only; content stays empty since the index is a sidecar to
// the source text.
func Decode(b []byte, p cookie.Platform) (*cookie.Jar, error) {
	l := layoutFor(p)
	if len(b) < l.headerSize {
		return nil, errors.NewMalformedHeader(fmt.Sprintf(
			"index is %d bytes, %s header needs %d", len(b), p, l.headerSize))
	}

	var jar *cookie.Jar
	var count uint64
	if p == cookie.PlatformHomebrew {
		count = trunc64(b[8:])
		jar = &cookie.Jar{
			Platform:  p,
			Version:   trunc64(b[0:]),
			MaxLength: trunc64(b[16:]),
			MinLength: trunc64(b[24:]),
			Flags:     trunc64(b[32:]),
			Delim:     b[40],
		}
	} else {
		count = uint64(binary.BigEndian.Uint32(b[4:]))
		jar = &cookie.Jar{
			Platform:  p,
			Version:   uint64(binary.BigEndian.Uint32(b[0:])),
			MaxLength: uint64(binary.BigEndian.Uint32(b[8:])),
			MinLength: uint64(binary.BigEndian.Uint32(b[12:])),
			Flags:     uint64(binary.BigEndian.Uint32(b[16:])),
			Delim:     b[20],
		}
	}

	table := b[l.headerSize:]
	if len(table)%l.entrySize != 0 {
		return nil, errors.NewTruncatedData(fmt.Sprintf(
			"offset table is %d bytes, not a multiple of %d", len(table), l.entrySize))
	}
	entries := uint64(len(table) / l.entrySize)
	if entries != count+1 {
		return nil, errors.NewTruncatedData(fmt.Sprintf(
			"header declares %d strings but the table holds %d entries", count, entries))
	}

	jar.Cookies = make([]cookie.Cookie, count)
	for i := range jar.Cookies {
		jar.Cookies[i].Offset = entry(table[i*l.entrySize:], p)
	}
	jar.FileSize = entry(table[int(count)*l.entrySize:], p)
	return jar, nil
}

func entry(b []byte, p cookie.Platform) uint64 {
	switch p {
	case cookie.PlatformHomebrew:
		return trunc64(b)
	case cookie.PlatformFreeBSD:
		return binary.BigEndian.Uint64(b)
	default:
		return uint64(binary.BigEndian.Uint32(b))
	}
}

// ReadFile loads and decodes an index file, detecting its layout. The
// jar's location is the path with the index extension trimmed.
func ReadFile(path string) (*cookie.Jar, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO(path, err)
	}
	jar, err := Decode(b, Detect(b))
	if err != nil {
		return nil, err
	}
	jar.Location = strings.TrimSuffix(path, Extension)
	for i := range jar.Cookies {
		jar.Cookies[i].Location = jar.Location
	}
	return jar, nil
}

// WriteFile encodes the jar in the given layout and writes it to path.
func WriteFile(path string, jar *cookie.Jar, p cookie.Platform) error {
	if err := os.WriteFile(path, Encode(jar, p), 0644); err != nil {
		return errors.NewIO(path, err)
	}
	return nil
}
