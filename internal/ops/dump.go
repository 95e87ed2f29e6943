package ops

import (
	"github.com/hpungsan/fortune/internal/cookie"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/strfile"
)

// DumpInput contains parameters for the Dump operation.
type DumpInput struct {
	Path string // index file to read
}

// DumpOutput contains the decoded index.
type DumpOutput struct {
	Path string      `json:"path"`
	Jar  *cookie.Jar `json:"jar"`
}

// Dump reads a binary index file and returns its decoded header and
// offset table.
func Dump(input DumpInput) (*DumpOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}
	jar, err := strfile.ReadFile(input.Path)
	if err != nil {
		return nil, err
	}
	return &DumpOutput{Path: input.Path, Jar: jar}, nil
}
