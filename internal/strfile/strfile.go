package strfile

import "github.com/hpungsan/fortune/internal/cookie"

// Extension is the index sidecar suffix.
const Extension = ".dat"

// layout describes one platform's wire format. All fields are
// big-endian on the wire; entrySize covers both offset-table entries
// and the trailing file size.
type layout struct {
	headerSize int
	entrySize  int
	version    uint64 // written when the jar does not carry one
}

func layoutFor(p cookie.Platform) layout {
	switch p {
	case cookie.PlatformHomebrew:
		return layout{headerSize: 48, entrySize: 8, version: 1}
	case cookie.PlatformFreeBSD:
		return layout{headerSize: 24, entrySize: 8, version: 1}
	default:
		return layout{headerSize: 24, entrySize: 4, version: 2}
	}
}
