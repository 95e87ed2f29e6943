package ops

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func writeCookieFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

// testTree writes a small cookie directory: two plain files and one
// offensive file under off/.
func testTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeCookieFile(t, filepath.Join(dir, "wisdom"),
		"patience is a virtue\n%\nlook before you leap\n%\nhaste makes waste\n")
	writeCookieFile(t, filepath.Join(dir, "humor"),
		"knock knock\n%\nwaiter, there is a fly in my soup\n")
	writeCookieFile(t, filepath.Join(dir, "off", "rude"),
		"censored\n")
	return dir
}

func TestSelection(t *testing.T) {
	tests := []struct {
		name           string
		all, offensive bool
		wantNormal     bool
		wantOff        bool
	}{
		{"plain", false, false, true, false},
		{"offensive only", false, true, false, true},
		{"all", true, false, true, true},
		{"all wins over offensive", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normal, off := selection(tt.all, tt.offensive)
			if normal != tt.wantNormal || off != tt.wantOff {
				t.Errorf("selection(%v, %v) = (%v, %v), want (%v, %v)",
					tt.all, tt.offensive, normal, off, tt.wantNormal, tt.wantOff)
			}
		})
	}
}

func TestNewSieve(t *testing.T) {
	sv, err := newSieve(false, false, 160, "", false)
	if err != nil {
		t.Fatalf("newSieve failed: %v", err)
	}
	if sv.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sv.Len())
	}

	// Short takes precedence when both length filters are set:
	// "shortcut" fits 10 with its newline, the proverb does not.
	sv, err = newSieve(true, true, 10, "", false)
	if err != nil {
		t.Fatalf("newSieve failed: %v", err)
	}
	if sv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", sv.Len())
	}
	if !sv.Admits("shortcut") {
		t.Error("short filter should admit a 9-byte cookie")
	}
	if sv.Admits("patience is a virtue") {
		t.Error("short filter should reject a 21-byte cookie")
	}

	sv, err = newSieve(false, true, 10, "virtue", true)
	if err != nil {
		t.Fatalf("newSieve failed: %v", err)
	}
	if sv.Len() != 2 {
		t.Errorf("Len() = %d, want 2", sv.Len())
	}
	if !sv.Admits("patience is a VIRTUE") {
		t.Error("long filter with case-folded pattern should admit the proverb")
	}
	if sv.Admits("virtue\n") {
		t.Error("long filter should reject a cookie under the threshold")
	}
}
