// Package ops implements fortune operations shared by the CLI, the MCP
// server, and the web server.
package ops

import (
	"fmt"
	"regexp"

	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/cookie"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/loader"
)

// selection translates the all/offensive flag pair into the pair of
// loader switches. Plain invocations see only inoffensive cookies,
// offensive-only invocations see only the marked ones, and all sees
// both.
func selection(all, offensive bool) (normal, off bool) {
	return all || !offensive, all || offensive
}

// defaultTokens picks the shelf locations for a request without path
// arguments: the configured defaults when set, otherwise the embedded
// bundle for the session language.
func defaultTokens(ld *loader.Loader, cfg *config.Config) []string {
	if len(cfg.DefaultPaths) > 0 {
		return cfg.DefaultPaths
	}
	return []string{ld.DefaultLocation()}
}

// loadCabinet builds a cabinet from weighted location tokens, verifies
// that every shelf location exists, and loads the cookies.
func loadCabinet(ld *loader.Loader, tokens []string, all, offensive bool) (*cookie.Cabinet, error) {
	cab, err := cookie.FromWeightedTokens(tokens)
	if err != nil {
		return nil, err
	}
	for _, s := range cab.Shelves {
		if !ld.Exists(s.Location) {
			return nil, errors.NewNotFound(s.Location)
		}
	}
	normal, off := selection(all, offensive)
	if err := cab.Load(ld, normal, off); err != nil {
		return nil, err
	}
	return cab, nil
}

// newSieve assembles the content filters shared by draw, match, and
// inventory. The short filter takes precedence when both length
// filters are requested. Lengths compare against the cookie text plus
// its trailing newline.
func newSieve(shortOnly, longOnly bool, length int, pattern string, ignoreCase bool) (*cookie.Sieve, error) {
	var sv cookie.Sieve
	if shortOnly {
		sv.Add(func(q string) bool { return len(q)+1 <= length })
	} else if longOnly {
		sv.Add(func(q string) bool { return len(q)+1 > length })
	}
	if pattern != "" {
		expr := pattern
		if ignoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("invalid pattern: %v", err))
		}
		sv.Add(re.MatchString)
	}
	return &sv, nil
}
