package strfile

import (
	"encoding/binary"

	"github.com/hpungsan/fortune/internal/cookie"
)

// putTrunc64 stores v in the truncated 8-byte scheme: the low 32 bits
// in big-endian order in the first four bytes, the rest zero. This
// reproduces a 32-bit byte swap applied to a 64-bit header field.
func putTrunc64(b []byte, v uint64) {
	binary.BigEndian.PutUint32(b, uint32(v))
	b[4], b[5], b[6], b[7] = 0, 0, 0, 0
}

// Encode renders the jar's index in the given platform layout. Offsets
// already present on cookies are written verbatim; zero offsets are
// recomputed from content lengths, assuming a single-byte delimiter
// with a newline on either side between records.
func Encode(jar *cookie.Jar, p cookie.Platform) []byte {
	l := layoutFor(p)
	version := jar.Version
	if version == 0 {
		version = l.version
	}
	count := uint64(len(jar.Cookies))

	buf := make([]byte, l.headerSize+(len(jar.Cookies)+1)*l.entrySize)
	if p == cookie.PlatformHomebrew {
		putTrunc64(buf[0:], version)
		putTrunc64(buf[8:], count)
		putTrunc64(buf[16:], jar.MaxLength)
		putTrunc64(buf[24:], jar.MinLength)
		putTrunc64(buf[32:], jar.Flags)
		buf[40] = jar.Delim
	} else {
		binary.BigEndian.PutUint32(buf[0:], uint32(version))
		binary.BigEndian.PutUint32(buf[4:], uint32(count))
		binary.BigEndian.PutUint32(buf[8:], uint32(jar.MaxLength))
		binary.BigEndian.PutUint32(buf[12:], uint32(jar.MinLength))
		binary.BigEndian.PutUint32(buf[16:], uint32(jar.Flags))
		buf[20] = jar.Delim
	}

	at := l.headerSize
	next := uint64(0)
	for _, c := range jar.Cookies {
		v := c.Offset
		if v == 0 {
			v = next
		}
		putEntry(buf[at:], p, v)
		at += l.entrySize
		next += uint64(len(c.Content)) + 3
	}
	putEntry(buf[at:], p, jar.FileSize)
	return buf
}

func putEntry(b []byte, p cookie.Platform, v uint64) {
	switch p {
	case cookie.PlatformHomebrew:
		putTrunc64(b, v)
	case cookie.PlatformFreeBSD:
		binary.BigEndian.PutUint64(b, v)
	default:
		binary.BigEndian.PutUint32(b, uint32(v))
	}
}
