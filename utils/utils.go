package utils

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// payload validation shared by the handlers
var Validate = validator.New()

// --- Query Helpers ---

// ParseLimit reads a limit query param, clamped to (0, max].
func ParseLimit(r *http.Request, def, max int) int {
	limit := def
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= max {
			limit = v
		}
	}
	return limit
}

// --- String Helpers ---

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
