package ops

import (
	"sort"
	"strings"

	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/cookie"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/strfile"
)

// BuildInput contains parameters for the Build operation.
type BuildInput struct {
	Infile    string // source text file; a trailing .dat is ignored
	Outfile   string // index path to write; default is the infile plus .dat
	Delim     string // single-character record delimiter; default "%"
	Order     bool   // sort cookies alphabetically before writing
	FoldCase  bool   // with Order, compare case-insensitively
	Randomize bool   // shuffle cookies before writing
	Rotated   bool   // set the rotated header bit
	Platform  string // index layout name; empty means the configured default
}

// BuildOutput contains the result of the Build operation.
type BuildOutput struct {
	Outfile  string `json:"outfile"`
	Count    int    `json:"count"`
	Longest  uint64 `json:"longest"`
	Shortest uint64 `json:"shortest"`
}

// Build parses a cookie text file and writes its binary index.
func Build(cfg *config.Config, p cookie.Picker, input BuildInput) (*BuildOutput, error) {
	if input.Infile == "" {
		return nil, errors.NewInvalidRequest("infile is required")
	}
	delim := cookie.DefaultDelim
	if input.Delim != "" {
		if len(input.Delim) != 1 {
			return nil, errors.NewInvalidRequest("delimiter must be a single character")
		}
		delim = input.Delim[0]
	}

	infile := strings.TrimSuffix(input.Infile, strfile.Extension)
	outfile := input.Outfile
	if outfile == "" {
		outfile = infile + strfile.Extension
	}

	jar, err := cookie.ParseFile(infile, delim)
	if err != nil {
		return nil, err
	}

	if input.Order {
		fold := input.FoldCase
		sort.SliceStable(jar.Cookies, func(i, k int) bool {
			a, b := jar.Cookies[i].Content, jar.Cookies[k].Content
			if fold {
				a, b = strings.ToLower(a), strings.ToLower(b)
			}
			return a < b
		})
		jar.Flags |= cookie.FlagOrdered
	}
	if input.Randomize {
		shuffle(p, jar.Cookies)
		jar.Flags |= cookie.FlagRandomized
	}
	if input.Rotated {
		jar.Flags |= cookie.FlagRotated
	}

	platform := input.Platform
	if platform == "" {
		platform = cfg.Platform
	}
	if err := strfile.WriteFile(outfile, jar, cookie.ParsePlatform(platform)); err != nil {
		return nil, err
	}
	return &BuildOutput{
		Outfile:  outfile,
		Count:    jar.NumCookies(),
		Longest:  jar.MaxLength,
		Shortest: jar.MinLength,
	}, nil
}

// shuffle permutes the cookies in place with a Fisher-Yates walk.
func shuffle(p cookie.Picker, cookies []cookie.Cookie) {
	for i := len(cookies) - 1; i > 0; i-- {
		k := p.IntN(i + 1)
		cookies[i], cookies[k] = cookies[k], cookies[i]
	}
}
