package cookie

// Source is one resolved text blob and the label its jar will carry.
type Source struct {
	Label string
	Text  string
}

// Resolver turns a location string into zero or more sources. The
// normal/offensive flags select which files a directory expansion keeps.
type Resolver interface {
	Resolve(location string, normal, offensive bool) ([]Source, error)
}

// Shelf is one location expression that may expand into multiple jars,
// with an optional user-assigned probability.
type Shelf struct {
	Location    string
	Probability float64
	Jars        []*Jar
}

// NewShelf creates a shelf for a location with the given probability.
// A zero probability means "resolve during normalization".
func NewShelf(location string, probability float64) *Shelf {
	return &Shelf{Location: location, Probability: probability}
}

// NumCookies returns the total cookie count across the shelf's jars.
func (s *Shelf) NumCookies() int {
	n := 0
	for _, j := range s.Jars {
		n += len(j.Cookies)
	}
	return n
}

// NumJars returns the number of jars on the shelf.
func (s *Shelf) NumJars() int {
	return len(s.Jars)
}

// Load resolves the shelf's location into jars. Each source is parsed
// with the default delimiter and relocated relative to the shelf.
func (s *Shelf) Load(r Resolver, normal, offensive bool) error {
	sources, err := r.Resolve(s.Location, normal, offensive)
	if err != nil {
		return err
	}
	jars := make([]*Jar, 0, len(sources))
	for _, src := range sources {
		jar := ParseText(src.Text, src.Label, DefaultDelim)
		jar.Relocate(s.Location)
		jars = append(jars, jar)
	}
	s.Jars = jars
	return nil
}

// CalculateProb distributes the shelf's probability over its jars,
// equally per jar or proportionally to cookie counts.
func (s *Shelf) CalculateProb(equalSize bool) {
	if s.Probability == 0 || len(s.Jars) == 0 {
		return
	}
	if equalSize {
		prob := s.Probability / float64(len(s.Jars))
		for _, j := range s.Jars {
			j.Probability = prob
		}
		return
	}
	total := s.NumCookies()
	if total == 0 {
		return
	}
	for _, j := range s.Jars {
		j.Probability = float64(len(j.Cookies)) / float64(total) * s.Probability
	}
}

// Filter applies the sieve to every jar and prunes jars left empty.
func (s *Shelf) Filter(sv *Sieve) {
	kept := s.Jars[:0]
	for _, j := range s.Jars {
		j.Filter(sv)
		if len(j.Cookies) > 0 {
			kept = append(kept, j)
		}
	}
	s.Jars = kept
}

// Choose draws a jar by weight, then a cookie uniformly from it.
func (s *Shelf) Choose(p Picker) *Cookie {
	weights := make([]float64, len(s.Jars))
	for i, j := range s.Jars {
		weights[i] = j.Probability
	}
	idx := weightedIndex(p, weights)
	if idx < 0 {
		return nil
	}
	return s.Jars[idx].Choose(p)
}
