package cookie

// Predicate is a pure admission test over one cookie's content.
type Predicate func(string) bool

// Sieve is a conjunctive list of predicates. The zero value admits
// everything.
type Sieve struct {
	predicates []Predicate
}

// Add appends a predicate to the sieve.
func (s *Sieve) Add(p Predicate) {
	s.predicates = append(s.predicates, p)
}

// Admits reports whether every predicate accepts the text.
func (s *Sieve) Admits(text string) bool {
	for _, p := range s.predicates {
		if !p(text) {
			return false
		}
	}
	return true
}

// Len returns the number of predicates.
func (s *Sieve) Len() int {
	return len(s.predicates)
}
