package ops

import (
	"fmt"

	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/loader"
)

// MatchInput contains parameters for the Match operation.
type MatchInput struct {
	Paths      []string // weighted location tokens; empty means the default location
	All        bool     // include offensive cookies alongside the normal ones
	Offensive  bool     // offensive cookies only
	ShortOnly  bool     // keep only cookies at or under the length threshold
	LongOnly   bool     // keep only cookies over the length threshold
	Length     int      // short/long threshold in bytes; 0 means the configured default
	Pattern    string   // regular expression to match, required
	IgnoreCase bool     // match the pattern case-insensitively
}

// MatchJar groups the matching cookies of one source file.
type MatchJar struct {
	Location string   `json:"location"`
	Cookies  []string `json:"cookies"`
}

// MatchOutput contains the result of the Match operation.
type MatchOutput struct {
	Jars []MatchJar `json:"jars"`
}

// Match lists every cookie admitted by the pattern, grouped per source
// file in load order.
func Match(ld *loader.Loader, cfg *config.Config, input MatchInput) (*MatchOutput, error) {
	if input.Pattern == "" {
		return nil, errors.NewInvalidRequest("pattern is required")
	}
	tokens := input.Paths
	if len(tokens) == 0 {
		tokens = defaultTokens(ld, cfg)
	}
	length := input.Length
	if length == 0 {
		length = cfg.ShortLength
	}

	sv, err := newSieve(input.ShortOnly, input.LongOnly, length, input.Pattern, input.IgnoreCase)
	if err != nil {
		return nil, err
	}

	cab, err := loadCabinet(ld, tokens, input.All, input.Offensive)
	if err != nil {
		return nil, err
	}
	cab.Filter(sv)

	out := &MatchOutput{}
	for _, s := range cab.Shelves {
		for _, j := range s.Jars {
			mj := MatchJar{Location: j.Location}
			for _, c := range j.Cookies {
				mj.Cookies = append(mj.Cookies, c.Content)
			}
			out.Jars = append(out.Jars, mj)
		}
	}
	if len(out.Jars) == 0 {
		return nil, errors.NewNoMatch(fmt.Sprintf("no matching fortune cookies for pattern: %s", input.Pattern))
	}
	return out, nil
}
