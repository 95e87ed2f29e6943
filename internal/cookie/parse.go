package cookie

import (
	"os"
	"strings"

	"github.com/hpungsan/fortune/internal/errors"
)

// ParseText builds a jar from one source text. Line endings are
// normalized to \n, records are split on a line holding only the
// delimiter, a trailing unterminated delimiter is tolerated, and
// whitespace-only records are dropped. The file's final newline
// terminates the last record rather than joining its content. Max/min
// lengths count the trailing newline; a jar with no surviving records
// keeps the 0/unset sentinels.
func ParseText(content, location string, delim byte) *Jar {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	jar := NewJar()
	jar.Location = strings.TrimSuffix(location, ".dat")
	jar.Delim = delim
	jar.FileSize = uint64(len(content))

	content = strings.TrimSuffix(content, "\n")
	splitter := "\n" + string(delim) + "\n"
	trailer := "\n" + string(delim)
	var maxLen, minLen uint64 = 0, MinLengthUnset
	for _, part := range strings.Split(content, splitter) {
		part = strings.TrimSuffix(part, trailer)
		if strings.TrimSpace(part) == "" {
			continue
		}
		jar.Cookies = append(jar.Cookies, Cookie{
			Location: jar.Location,
			Content:  part,
		})
		length := uint64(len(part)) + 1
		maxLen = max(maxLen, length)
		minLen = min(minLen, length)
	}
	jar.MaxLength = maxLen
	jar.MinLength = minLen
	return jar
}

// ParseFile reads a source file and parses it with ParseText.
func ParseFile(path string, delim byte) (*Jar, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO(path, err)
	}
	return ParseText(string(b), path, delim), nil
}
