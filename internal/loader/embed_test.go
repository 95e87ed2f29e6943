package loader

import (
	"testing"
	"testing/fstest"

	"github.com/hpungsan/fortune/internal/errors"
)

func newTestBundle() *Loader {
	return &Loader{bundle: fstest.MapFS{
		"en/proverbs":  &fstest.MapFile{Data: []byte("apple\n%\nbanana\n%")},
		"en/computers": &fstest.MapFile{Data: []byte("cherry\n%")},
		"en/off/rude":  &fstest.MapFile{Data: []byte("elderberry\n%")},
		"zh/lunyu":     &fstest.MapFile{Data: []byte("durian\n%")},
	}}
}

func TestResolveEmbedded(t *testing.T) {
	tests := []struct {
		name      string
		location  string
		normal    bool
		offensive bool
		want      []string
	}{
		{
			name:     "language directory",
			location: "embed:en",
			normal:   true,
			want:     []string{"en/computers", "en/proverbs"},
		},
		{
			name:     "exact file",
			location: "embed:en/proverbs",
			normal:   true,
			want:     []string{"en/proverbs"},
		},
		{
			name:     "whole bundle",
			location: "embed:",
			normal:   true,
			want:     []string{"en/computers", "en/proverbs", "zh/lunyu"},
		},
		{
			name:      "offensive selection",
			location:  "embed:en",
			offensive: true,
			want:      []string{"en/off/rude"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestBundle()
			sources, err := l.Resolve(tt.location, tt.normal, tt.offensive)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if len(sources) != len(tt.want) {
				t.Fatalf("len(sources) = %d, want %d", len(sources), len(tt.want))
			}
			for i, want := range tt.want {
				if sources[i].Label != want {
					t.Errorf("sources[%d].Label = %q, want %q", i, sources[i].Label, want)
				}
			}
		})
	}
}

func TestResolveEmbeddedMissing(t *testing.T) {
	l := newTestBundle()
	_, err := l.Resolve("embed:xx", true, false)
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Resolve() error = %v, want NOT_FOUND", err)
	}
}

func TestResolveRealBundle(t *testing.T) {
	l := New()
	sources, err := l.Resolve("embed:en", true, false)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("len(sources) = %d, want 2", len(sources))
	}
	for _, src := range sources {
		if src.Text == "" {
			t.Errorf("source %q is empty", src.Label)
		}
	}
}

func TestDefaultLocation(t *testing.T) {
	tests := []struct {
		name  string
		lcAll string
		lang  string
		want  string
	}{
		{name: "chinese locale", lcAll: "zh_CN.UTF-8", want: "embed:zh"},
		{name: "english locale", lang: "en_US.UTF-8", want: "embed:en"},
		{name: "lc_all wins over lang", lcAll: "zh_TW.UTF-8", lang: "en_US.UTF-8", want: "embed:zh"},
		{name: "unbundled language falls back", lang: "fr_FR.UTF-8", want: "embed:en"},
		{name: "posix locale falls back", lang: "C", want: "embed:en"},
		{name: "no locale at all", want: "embed:en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LANG", tt.lang)
			l := New()
			if got := l.DefaultLocation(); got != tt.want {
				t.Errorf("DefaultLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrimaryLang(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{name: "full posix locale", env: "en_US.UTF-8", want: "en"},
		{name: "chinese", env: "zh_CN.UTF-8", want: "zh"},
		{name: "bcp47 form", env: "zh-TW", want: "zh"},
		{name: "modifier suffix", env: "sr_RS@latin", want: "sr"},
		{name: "bare language", env: "de", want: "de"},
		{name: "c locale", env: "C", want: ""},
		{name: "empty", env: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.env)
			t.Setenv("LANG", "")
			if got := primaryLang(); got != tt.want {
				t.Errorf("primaryLang() = %q, want %q", got, tt.want)
			}
		})
	}
}
