package cookie

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// File flag bits carried in the index header.
const (
	FlagRandomized uint64 = 0x1 // randomized pointers
	FlagOrdered    uint64 = 0x2 // ordered pointers
	FlagRotated    uint64 = 0x4 // rot-13'd pointers
)

// DefaultDelim is the record delimiter used when none is specified.
const DefaultDelim byte = '%'

// MinLengthUnset is the min_length sentinel for a jar with no cookies.
const MinLengthUnset uint64 = math.MaxUint64

// Cookie is a single quote with its source location and byte offset.
// Offset is 0 when unknown; encoders recompute it in that case.
type Cookie struct {
	Location string
	Content  string
	Offset   uint64
}

// Jar is one text source parsed into discrete cookies, with header
// metadata mirroring the binary index format.
type Jar struct {
	// Location is the source path, relative to the owning shelf
	Location string

	// Probability is the normalized selection weight (0 until resolved)
	Probability float64

	// Platform selects the index wire layout
	Platform Platform

	// Version is the index format version (0 means the layout default)
	Version uint64

	// MaxLength and MinLength are the longest/shortest cookie length
	// including the trailing newline
	MaxLength uint64
	MinLength uint64

	// Flags holds the randomized/ordered/rotated bits
	Flags uint64

	// Delim is the record delimiter character
	Delim byte

	// FileSize is the total byte length of the source text
	FileSize uint64

	Cookies []Cookie
}

// NewJar returns an empty jar with the default delimiter and the
// empty-jar length sentinels.
func NewJar() *Jar {
	return &Jar{
		Platform:  DefaultPlatform(),
		MinLength: MinLengthUnset,
		Delim:     DefaultDelim,
	}
}

// NumCookies returns the number of cookies in the jar.
func (j *Jar) NumCookies() int {
	return len(j.Cookies)
}

// Filter removes cookies not admitted by the sieve, in place.
func (j *Jar) Filter(sv *Sieve) {
	kept := j.Cookies[:0]
	for _, c := range j.Cookies {
		if sv.Admits(c.Content) {
			kept = append(kept, c)
		}
	}
	j.Cookies = kept
}

// Choose returns a uniformly random cookie, or nil if the jar is empty.
func (j *Jar) Choose(p Picker) *Cookie {
	if len(j.Cookies) == 0 {
		return nil
	}
	return &j.Cookies[p.IntN(len(j.Cookies))]
}

// Relocate rewrites the jar and cookie locations relative to parent.
func (j *Jar) Relocate(parent string) {
	j.Location = trimParentPath(j.Location, parent)
	for i := range j.Cookies {
		j.Cookies[i].Location = j.Location
	}
}

// String renders the header block shown by the index dump command.
func (j *Jar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Jar {\n")
	fmt.Fprintf(&b, "  location: '%s'\n", j.Location)
	fmt.Fprintf(&b, "  probability: %v\n", j.Probability)
	fmt.Fprintf(&b, "  platform: '%s'\n", j.Platform)
	fmt.Fprintf(&b, "  version: %d\n", j.Version)
	fmt.Fprintf(&b, "  num_cookies: %d\n", len(j.Cookies))
	fmt.Fprintf(&b, "  max_length: %d\n", j.MaxLength)
	fmt.Fprintf(&b, "  min_length: %d\n", j.MinLength)

	var flags []string
	if j.Flags&FlagRandomized != 0 {
		flags = append(flags, "RANDOM")
	}
	if j.Flags&FlagOrdered != 0 {
		flags = append(flags, "ORDERED")
	}
	if j.Flags&FlagRotated != 0 {
		flags = append(flags, "ROTATED")
	}
	fmt.Fprintf(&b, "  flags: [%s]\n", strings.Join(flags, ", "))

	fmt.Fprintf(&b, "  delim: '%c'\n", j.Delim)
	fmt.Fprintf(&b, "  file_size: %d\n", j.FileSize)
	fmt.Fprintf(&b, "}")
	return b.String()
}

// trimParentPath strips a parent directory prefix from path. The path is
// returned unchanged when it equals the parent or the parent is not a
// prefix of it.
func trimParentPath(path, parent string) string {
	if path == parent {
		return path
	}
	path = filepath.ToSlash(path)
	parent = filepath.ToSlash(parent)
	return strings.TrimPrefix(path, strings.TrimSuffix(parent, "/")+"/")
}
