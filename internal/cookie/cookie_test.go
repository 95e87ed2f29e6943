package cookie

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestNewJar(t *testing.T) {
	jar := NewJar()
	if jar.Location != "" {
		t.Errorf("Location = %q, want empty", jar.Location)
	}
	if jar.Probability != 0 {
		t.Errorf("Probability = %v, want 0", jar.Probability)
	}
	if jar.Version != 0 {
		t.Errorf("Version = %d, want 0", jar.Version)
	}
	if jar.MaxLength != 0 {
		t.Errorf("MaxLength = %d, want 0", jar.MaxLength)
	}
	if jar.MinLength != MinLengthUnset {
		t.Errorf("MinLength = %d, want MinLengthUnset", jar.MinLength)
	}
	if jar.Flags != 0 {
		t.Errorf("Flags = %d, want 0", jar.Flags)
	}
	if jar.Delim != '%' {
		t.Errorf("Delim = %c, want %%", jar.Delim)
	}
	if len(jar.Cookies) != 0 {
		t.Errorf("len(Cookies) = %d, want 0", len(jar.Cookies))
	}
}

func TestJarFilter(t *testing.T) {
	tests := []struct {
		name       string
		predicates []Predicate
		want       []string
	}{
		{
			name:       "length greater than 6",
			predicates: []Predicate{func(q string) bool { return len(q) > 6 }},
			want:       []string{"cherry!"},
		},
		{
			name:       "length less than 6",
			predicates: []Predicate{func(q string) bool { return len(q) < 6 }},
			want:       []string{"apple"},
		},
		{
			name: "length between 5 and 7",
			predicates: []Predicate{
				func(q string) bool { return len(q) > 5 },
				func(q string) bool { return len(q) < 7 },
			},
			want: []string{"banana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jar := ParseText("apple\n#\nbanana\n#\ncherry!", "valley", '#')
			var sv Sieve
			for _, p := range tt.predicates {
				sv.Add(p)
			}
			jar.Filter(&sv)
			if len(jar.Cookies) != len(tt.want) {
				t.Fatalf("len(Cookies) = %d, want %d", len(jar.Cookies), len(tt.want))
			}
			for i, want := range tt.want {
				if jar.Cookies[i].Content != want {
					t.Errorf("Cookies[%d] = %q, want %q", i, jar.Cookies[i].Content, want)
				}
			}
		})
	}
}

func TestJarChoose(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		numCookies int
	}{
		{name: "no cookies", content: "", numCookies: 0},
		{name: "single cookie", content: "apple", numCookies: 1},
		{
			name:       "multiple cookies",
			content:    "apple\n%\nbanana\n%\ncherry\n%\ndurian\n%\nwatermelon",
			numCookies: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jar := ParseText(tt.content, "valley", '%')
			rng := testRand()

			if tt.numCookies == 0 {
				if got := jar.Choose(rng); got != nil {
					t.Errorf("Choose() = %v, want nil", got)
				}
				return
			}

			// Draw 100 times and count distinct contents.
			seen := map[string]bool{}
			for range 100 {
				c := jar.Choose(rng)
				if c == nil {
					t.Fatal("Choose() = nil, want cookie")
				}
				seen[c.Content] = true
			}
			if len(seen) != tt.numCookies {
				t.Errorf("distinct cookies = %d, want %d", len(seen), tt.numCookies)
			}
		})
	}
}

func TestJarRelocate(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		parent string
		want   string
	}{
		{
			name:   "trims parent path",
			path:   "tests/data/cookie/valley",
			parent: "tests/data",
			want:   "cookie/valley",
		},
		{
			name:   "parent not a prefix",
			path:   "tests/data/cookie/valley",
			parent: "tests/cookie",
			want:   "tests/data/cookie/valley",
		},
		{
			name:   "path equals parent",
			path:   "tests/data/cookie/valley",
			parent: "tests/data/cookie/valley",
			want:   "tests/data/cookie/valley",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jar := ParseText("apple\n%\nbanana", tt.path, '%')
			jar.Relocate(tt.parent)
			if jar.Location != tt.want {
				t.Errorf("Location = %q, want %q", jar.Location, tt.want)
			}
			for i, c := range jar.Cookies {
				if c.Location != tt.want {
					t.Errorf("Cookies[%d].Location = %q, want %q", i, c.Location, tt.want)
				}
			}
		})
	}
}

func TestJarString(t *testing.T) {
	jar := &Jar{
		Location:    "valley",
		Probability: 12.345,
		Platform:    PlatformHomebrew,
		Version:     1,
		MaxLength:   10,
		MinLength:   5,
		Flags:       FlagOrdered | FlagRandomized | FlagRotated,
		Delim:       '%',
		FileSize:    100,
		Cookies: []Cookie{
			{Location: "valley", Content: "apple", Offset: 0},
			{Location: "valley", Content: "banana", Offset: 10},
		},
	}

	out := jar.String()
	for _, want := range []string{
		"Jar {",
		"location: 'valley'",
		"probability: 12.345",
		"platform: 'homebrew'",
		"version: 1",
		"num_cookies: 2",
		"max_length: 10",
		"min_length: 5",
		"flags: [RANDOM, ORDERED, ROTATED]",
		"delim: '%'",
		"file_size: 100",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q, got:\n%s", want, out)
		}
	}
}

func TestTrimParentPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		parent string
		want   string
	}{
		{
			name:   "trims parent path",
			path:   "tests/data/cookie/valley",
			parent: "tests/data",
			want:   "cookie/valley",
		},
		{
			name:   "parent not a prefix",
			path:   "tests/data/cookie/valley",
			parent: "tests/cookie",
			want:   "tests/data/cookie/valley",
		},
		{
			name:   "path equals parent",
			path:   "tests/data/cookie/valley",
			parent: "tests/data/cookie/valley",
			want:   "tests/data/cookie/valley",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trimParentPath(tt.path, tt.parent)
			if got != tt.want {
				t.Errorf("trimParentPath(%q, %q) = %q, want %q", tt.path, tt.parent, got, tt.want)
			}
		})
	}
}

func TestPlatform(t *testing.T) {
	tests := []struct {
		name string
		p    Platform
		want string
	}{
		{name: "homebrew", p: PlatformHomebrew, want: "homebrew"},
		{name: "linux", p: PlatformLinux, want: "linux"},
		{name: "freebsd", p: PlatformFreeBSD, want: "freebsd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := ParsePlatform(tt.want); got != tt.p {
				t.Errorf("ParsePlatform(%q) = %v, want %v", tt.want, got, tt.p)
			}
		})
	}

	t.Run("unknown name falls back to host default", func(t *testing.T) {
		if got := ParsePlatform("solaris"); got != DefaultPlatform() {
			t.Errorf("ParsePlatform(solaris) = %v, want %v", got, DefaultPlatform())
		}
	})
}
