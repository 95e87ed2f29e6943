package ops

import (
	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/cookie"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/loader"
)

// DrawInput contains parameters for the Draw operation.
type DrawInput struct {
	Paths      []string // weighted location tokens; empty means the default location
	All        bool     // include offensive cookies alongside the normal ones
	Offensive  bool     // offensive cookies only
	Equal      bool     // weight every file equally instead of by cookie count
	ShortOnly  bool     // keep only cookies at or under the length threshold
	LongOnly   bool     // keep only cookies over the length threshold
	Length     int      // short/long threshold in bytes; 0 means the configured default
	Pattern    string   // optional regular expression the cookie must match
	IgnoreCase bool     // match the pattern case-insensitively
}

// DrawOutput contains the result of the Draw operation.
type DrawOutput struct {
	Location string `json:"location"`
	Content  string `json:"content"`
}

// Draw samples one cookie from the weighted location hierarchy.
func Draw(ld *loader.Loader, cfg *config.Config, p cookie.Picker, input DrawInput) (*DrawOutput, error) {
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
	if sv.Len() > 0 {
		cab.Filter(sv)
	}
	if cab.NumCookies() == 0 {
		return nil, errors.NewNoMatch("no fortune cookies found")
	}

	cab.CalculateProb(input.Equal)
	c := cab.Choose(p)
	if c == nil {
		return nil, errors.NewNoMatch("no fortune cookies found")
	}
	return &DrawOutput{Location: c.Location, Content: c.Content}, nil
}
