package preview

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

type handlers struct {
	catalog *mailer.Catalog
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexPage(h.catalog).Render(r.Context(), w)
}

func (h *handlers) html(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.render(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = doc.Component().Render(r.Context(), w)
}

func (h *handlers) text(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.render(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, doc.Text())
}

func (h *handlers) params(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	tmpl, err := h.catalog.Lookup(kind)
	if err != nil {
		writeError(w, err)
		return
	}
	resolved, err := tmpl.Resolve(queryParams(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resolved)
}

func (h *handlers) render(w http.ResponseWriter, r *http.Request) (mailer.Document, bool) {
	doc, err := h.catalog.Render(chi.URLParam(r, "kind"), queryParams(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return mailer.Document{}, false
	}
	return doc, true
}

// queryParams takes the first value of every query parameter.
func queryParams(q url.Values) mailer.Params {
	params := make(mailer.Params, len(q))
	for name, values := range q {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}
	return params
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, mailer.ErrUnknownTemplate):
		status = http.StatusNotFound
	case errors.Is(err, mailer.ErrUnknownParameter):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func indexPage(catalog *mailer.Catalog) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Email templates</title></head><body><h1>Email templates</h1><ul>`); err != nil {
			return err
		}
		for _, kind := range catalog.Kinds() {
			tmpl, err := catalog.Lookup(kind)
			if err != nil {
				return err
			}
			href := string(templ.URL("/templates/" + url.PathEscape(kind)))
			item := `<li><a href="` + templ.EscapeString(href) + `">` + templ.EscapeString(kind) + `</a>`
			if tmpl.Description != "" {
				item += ` - ` + templ.EscapeString(tmpl.Description)
			}
			item += ` (<a href="` + templ.EscapeString(href+"/text") + `">text</a>)</li>`
			if _, err := io.WriteString(w, item); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></body></html>`)
		return err
	})
}
