package finder

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ziadkadry99/kitchen-finder/internal/kitchen"
)

// Source is where the finder gets its kitchens from.
type Source interface {
	Search(ctx context.Context, location string) ([]kitchen.Kitchen, error)
	Get(ctx context.Context, id string) (*kitchen.Kitchen, error)
}

// Finder serves the kitchen search page and its results fragment.
type Finder struct {
	source          Source
	defaultLocation string
	logger          *zap.Logger
}

// New creates a Finder. Searches without a location use defaultLocation.
func New(source Source, defaultLocation string, logger *zap.Logger) *Finder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{
		source:          source,
		defaultLocation: defaultLocation,
		logger:          logger,
	}
}

// RegisterRoutes mounts all finder routes onto the given router.
func (f *Finder) RegisterRoutes(r chi.Router) {
	r.Get("/", f.ServeIndex)
	r.Get("/kitchens", f.handleResults)
	r.Get("/kitchens/{id}", f.handleDetail)
	r.Get("/api/kitchens/search", f.handleSearchAPI)
}

func (f *Finder) location(r *http.Request) string {
	if loc := strings.TrimSpace(r.URL.Query().Get("location")); loc != "" {
		return loc
	}
	return f.defaultLocation
}

// ServeIndex serves the search page in its pending state. The page script
// requests the results fragment as soon as it loads.
func (f *Finder) ServeIndex(w http.ResponseWriter, r *http.Request) {
	var v View
	v.Begin(f.location(r))

	f.renderHTML(w, indexTmpl, "layout", pageData{
		Title:    "Cloud Kitchen Finder",
		Location: v.Location,
		View:     v,
	})
}

// Fetch runs one search and returns the resolved view.
func (f *Finder) Fetch(ctx context.Context, location string) View {
	var v View
	v.Begin(location)

	kitchens, err := f.source.Search(ctx, location)
	if err != nil {
		f.logFetchError(ctx, "search", err, zap.String("location", location))
		v.Fail(err)
		return v
	}

	v.Succeed(kitchens)
	return v
}

// handleResults renders the results fragment. Upstream failures are part of
// the rendered state, so the response is 200 either way.
func (f *Finder) handleResults(w http.ResponseWriter, r *http.Request) {
	v := f.Fetch(r.Context(), f.location(r))
	f.renderHTML(w, resultsTmpl, "results", v)
}

func (f *Finder) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// chi matches on the raw path when one is set, leaving escapes in place.
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	data := pageData{
		Title:    "Cloud Kitchen Finder",
		Location: f.location(r),
	}

	k, err := f.source.Get(r.Context(), id)
	if err != nil {
		f.logFetchError(r.Context(), "get", err, zap.String("id", id))
		data.Error = err.Error()
	} else {
		data.Kitchen = k
		if name := display(k.Name); name != "" {
			data.Title = name + " - Cloud Kitchen Finder"
		}
	}

	f.renderHTML(w, detailTmpl, "layout", data)
}

func (f *Finder) handleSearchAPI(w http.ResponseWriter, r *http.Request) {
	v := f.Fetch(r.Context(), f.location(r))
	if v.Error != "" {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": v.Error})
		return
	}
	if v.Kitchens == nil {
		v.Kitchens = []kitchen.Kitchen{}
	}
	writeJSON(w, http.StatusOK, v.Kitchens)
}

func (f *Finder) logFetchError(ctx context.Context, operation string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("operation", operation),
		zap.String("request_id", middleware.GetReqID(ctx)),
		zap.Error(err),
	)
	var se *kitchen.StatusError
	if errors.As(err, &se) {
		fields = append(fields, zap.Int("upstream_status", se.StatusCode))
	}
	f.logger.Warn("kitchen fetch failed", fields...)
}
