package web

import (
	"encoding/json"
	stderrors "errors"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/loader"
	"github.com/hpungsan/fortune/internal/ops"
)

// Handlers contains HTTP route handlers for the fortune API.
type Handlers struct {
	ld      *loader.Loader
	cfg     *config.Config
	version string
}

// HandleRoot handles GET / — service identification.
func (h *Handlers) HandleRoot(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]any{
		"name":    "fortune",
		"version": h.version,
	})
}

// HandleDraw handles GET /fortune — draw one cookie.
// Query parameters mirror the CLI flags: repeated path values plus the
// a/o/e/s/l/i booleans, n for the length threshold, m for a pattern.
func (h *Handlers) HandleDraw(w http.ResponseWriter, r *http.Request) {
	input := ops.DrawInput{
		Paths:      r.URL.Query()["path"],
		All:        parseBoolParam(r, "a"),
		Offensive:  parseBoolParam(r, "o"),
		Equal:      parseBoolParam(r, "e"),
		ShortOnly:  parseBoolParam(r, "s"),
		LongOnly:   parseBoolParam(r, "l"),
		Length:     parseIntParam(r, "n", 0),
		Pattern:    r.URL.Query().Get("m"),
		IgnoreCase: parseBoolParam(r, "i"),
	}

	// Requests run concurrently, so each draw gets its own picker.
	p := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	result, err := ops.Draw(h.ld, h.cfg, p, input)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// HandleListFiles handles GET /fortune/files — the resolved probability tree.
func (h *Handlers) HandleListFiles(w http.ResponseWriter, r *http.Request) {
	input := ops.InventoryInput{
		Paths:      r.URL.Query()["path"],
		All:        parseBoolParam(r, "a"),
		Offensive:  parseBoolParam(r, "o"),
		Equal:      parseBoolParam(r, "e"),
		ShortOnly:  parseBoolParam(r, "s"),
		LongOnly:   parseBoolParam(r, "l"),
		Length:     parseIntParam(r, "n", 0),
		Pattern:    r.URL.Query().Get("m"),
		IgnoreCase: parseBoolParam(r, "i"),
	}

	result, err := ops.Inventory(h.ld, h.cfg, input)
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderError writes a structured error response.
func renderError(w http.ResponseWriter, err error) {
	var fErr *errors.FortuneError
	if !stderrors.As(err, &fErr) {
		fErr = errors.NewInternal(err)
	}

	renderJSON(w, fErr.Status, map[string]any{
		"error": map[string]any{
			"code":    string(fErr.Code),
			"message": fErr.Message,
			"status":  fErr.Status,
		},
	})
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// parseBoolParam parses a boolean query parameter.
func parseBoolParam(r *http.Request, name string) bool {
	s := r.URL.Query().Get(name)
	return s == "true" || s == "1"
}
