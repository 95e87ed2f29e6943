package loader

import (
	"embed"
	"io/fs"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/hpungsan/fortune/internal/cookie"
	"github.com/hpungsan/fortune/internal/errors"
)

// EmbedPrefix selects the embedded bundle instead of the filesystem.
const EmbedPrefix = "embed:"

//go:embed cookies
var bundleFS embed.FS

// New returns a loader backed by the embedded cookie bundle.
func New() *Loader {
	sub, err := fs.Sub(bundleFS, "cookies")
	if err != nil {
		log.Fatalf("failed to create bundle sub-FS: %v", err)
	}
	return &Loader{bundle: sub}
}

func (l *Loader) resolveEmbedded(rest string, normal, offensive bool) ([]cookie.Source, error) {
	var sources []cookie.Source
	err := fs.WalkDir(l.bundle, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if rest != "" && p != rest && !strings.HasPrefix(p, rest+"/") {
			return nil
		}
		if !keepPath(p, normal, offensive) {
			return nil
		}
		b, err := fs.ReadFile(l.bundle, p)
		if err != nil {
			return err
		}
		sources = append(sources, cookie.Source{Label: p, Text: string(b)})
		return nil
	})
	if err != nil {
		return nil, errors.NewIO(EmbedPrefix+rest, err)
	}
	if len(sources) == 0 {
		return nil, errors.NewNotFound(EmbedPrefix + rest)
	}
	return sources, nil
}

// DefaultLocation picks the embedded bundle matching the session
// language, falling back to English.
func (l *Loader) DefaultLocation() string {
	if lang := primaryLang(); lang != "" {
		if _, err := fs.Stat(l.bundle, lang); err == nil {
			return EmbedPrefix + lang
		}
	}
	return EmbedPrefix + "en"
}

// primaryLang extracts the primary language subtag from the locale
// environment, or "" when none can be parsed.
func primaryLang() string {
	env := os.Getenv("LC_ALL")
	if env == "" {
		env = os.Getenv("LANG")
	}
	if env == "" {
		return ""
	}
	env, _, _ = strings.Cut(env, ".")
	env, _, _ = strings.Cut(env, "@")
	tag, err := language.Parse(strings.ReplaceAll(env, "_", "-"))
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}
