package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-content-api/internal/middleware"
	"go-content-api/internal/model"
	"go-content-api/pkg/apierror"
)

// Pagination turns ?limit=&page= into a model.Page. Missing or malformed
// values fall back to the defaults; limit never exceeds Max.
type Pagination struct {
	Default int
	Max     int
}

func (p Pagination) Parse(r *http.Request) model.Page {
	limit := positiveQuery(r, "limit", p.Default)
	if p.Max > 0 && limit > p.Max {
		limit = p.Max
	}
	page := positiveQuery(r, "page", 1)

	return model.Page{Limit: limit, Offset: (page - 1) * limit}
}

func positiveQuery(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func idParam(r *http.Request, name string, message string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.Validation(message)
	}
	return id, nil
}

func currentUser(r *http.Request) (int64, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return 0, apierror.Authentication("No authentication headers provided")
	}
	return claims.UserID, nil
}
