package ops

import (
	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/loader"
)

// InventoryInput contains parameters for the Inventory operation.
type InventoryInput struct {
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

// InventoryJar reports one source file and its resolved draw chance.
type InventoryJar struct {
	Location    string  `json:"location"`
	Probability float64 `json:"probability"`
	NumCookies  int     `json:"num_cookies"`
}

// InventoryShelf reports one location argument and its resolved draw
// chance.
type InventoryShelf struct {
	Location    string         `json:"location"`
	Probability float64        `json:"probability"`
	Jars        []InventoryJar `json:"jars"`
}

// InventoryOutput contains the result of the Inventory operation.
type InventoryOutput struct {
	Shelves []InventoryShelf `json:"shelves"`
}

// Inventory reports the resolved probability tree without drawing.
func Inventory(ld *loader.Loader, cfg *config.Config, input InventoryInput) (*InventoryOutput, error) {
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

	out := &InventoryOutput{}
	for _, s := range cab.Shelves {
		is := InventoryShelf{Location: s.Location, Probability: s.Probability}
		for _, j := range s.Jars {
			is.Jars = append(is.Jars, InventoryJar{
				Location:    j.Location,
				Probability: j.Probability,
				NumCookies:  j.NumCookies(),
			})
		}
		out.Shelves = append(out.Shelves, is)
	}
	return out, nil
}
