package cookie

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hpungsan/fortune/internal/errors"
)

// weightTolerance is the slack allowed when checking that explicit
// shelf weights sum to 100%.
const weightTolerance = 1e-4

// Cabinet is the root collection of shelves for one invocation.
type Cabinet struct {
	Shelves []*Shelf
}

// FromWeightedTokens builds a cabinet from a list of "N%" and location
// tokens. A weight token binds to the next location; explicit weights
// must sum to 100% or be absent entirely.
func FromWeightedTokens(tokens []string) (*Cabinet, error) {
	cab := &Cabinet{}
	prob := 0.0
	for _, tok := range tokens {
		if strings.HasSuffix(tok, "%") {
			v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
			if err != nil {
				return nil, errors.NewConfig(fmt.Sprintf("invalid weight token: %q", tok))
			}
			prob = v
			continue
		}
		if prob > 0 {
			cab.Push(NewShelf(tok, prob))
			prob = 0
		} else {
			cab.Push(NewShelf(tok, 0))
		}
	}
	if prob > 0 {
		return nil, errors.NewConfig(fmt.Sprintf("weight %g%% has no following location", prob))
	}

	total := 0.0
	for _, s := range cab.Shelves {
		total += s.Probability
	}
	if math.Abs(total-100.0) > weightTolerance && total > 0 {
		return nil, errors.NewPartialWeights(total)
	}
	return cab, nil
}

// Push appends a shelf to the cabinet.
func (c *Cabinet) Push(s *Shelf) {
	c.Shelves = append(c.Shelves, s)
}

// NumCookies returns the total cookie count across all shelves.
func (c *Cabinet) NumCookies() int {
	n := 0
	for _, s := range c.Shelves {
		n += s.NumCookies()
	}
	return n
}

// NumJars returns the total jar count across all shelves.
func (c *Cabinet) NumJars() int {
	n := 0
	for _, s := range c.Shelves {
		n += s.NumJars()
	}
	return n
}

// Load resolves every shelf's location into jars.
func (c *Cabinet) Load(r Resolver, normal, offensive bool) error {
	for _, s := range c.Shelves {
		if err := s.Load(r, normal, offensive); err != nil {
			return err
		}
	}
	return nil
}

// CalculateProb resolves shelf and jar probabilities top-down. When no
// shelf carries an explicit weight, 100% is distributed over shelves
// equally per jar or proportionally to cookie counts; each shelf then
// distributes its own weight over its jars the same way.
func (c *Cabinet) CalculateProb(equalSize bool) {
	total := 0.0
	for _, s := range c.Shelves {
		total += s.Probability
	}
	if total == 0 {
		if equalSize {
			if n := c.NumJars(); n > 0 {
				probPerJar := 100.0 / float64(n)
				for _, s := range c.Shelves {
					s.Probability = probPerJar * float64(s.NumJars())
				}
			}
		} else {
			if n := c.NumCookies(); n > 0 {
				probPerCookie := 100.0 / float64(n)
				for _, s := range c.Shelves {
					s.Probability = probPerCookie * float64(s.NumCookies())
				}
			}
		}
	}

	for _, s := range c.Shelves {
		s.CalculateProb(equalSize)
	}
}

// Filter applies the sieve to every shelf and prunes shelves left
// without jars.
func (c *Cabinet) Filter(sv *Sieve) {
	kept := c.Shelves[:0]
	for _, s := range c.Shelves {
		s.Filter(sv)
		if s.NumJars() > 0 {
			kept = append(kept, s)
		}
	}
	c.Shelves = kept
}

// Choose draws a shelf by weight, then delegates down the hierarchy.
// Sampling is only meaningful after CalculateProb.
func (c *Cabinet) Choose(p Picker) *Cookie {
	weights := make([]float64, len(c.Shelves))
	for i, s := range c.Shelves {
		weights[i] = s.Probability
	}
	idx := weightedIndex(p, weights)
	if idx < 0 {
		return nil
	}
	return c.Shelves[idx].Choose(p)
}
