package mailer

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Params maps template parameter names to values.
// A missing key and an empty value both mean the parameter is absent.
type Params map[string]string

// Get returns the value for name, or "" if absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Has reports whether name resolves to a non-empty value.
func (p Params) Has(name string) bool {
	return p[name] != ""
}

// Template is one catalog entry: a default parameter set plus a pure render
// function. Render receives fully resolved parameters and must not perform
// I/O, read the clock or use randomness.
type Template struct {
	// Defaults holds the documented default for every defaulted parameter.
	Defaults Params
	// Render builds the document from resolved parameters.
	Render func(p Params) Document
	// Subject derives a default subject line. Optional.
	Subject func(p Params) string
	// Kind is the catalog identifier, e.g. "token_launch".
	Kind string
	// Description is a short human readable summary.
	Description string
	// Optional lists parameters without a default (absent unless supplied).
	Optional []string
}

// Fields returns every parameter name the template accepts, sorted.
func (t Template) Fields() []string {
	fields := make([]string, 0, len(t.Defaults)+len(t.Optional))
	fields = append(fields, slices.Collect(maps.Keys(t.Defaults))...)
	fields = append(fields, t.Optional...)
	slices.Sort(fields)
	return slices.Compact(fields)
}

// Resolve overlays the supplied non-empty values on the template defaults.
// Returns ErrUnknownParameter for names the template does not declare.
func (t Template) Resolve(params Params) (Params, error) {
	resolved := maps.Clone(t.Defaults)
	if resolved == nil {
		resolved = make(Params, len(params))
	}

	for name, value := range params {
		if !t.accepts(name) {
			return nil, fmt.Errorf("%w: %q for template %q", ErrUnknownParameter, name, t.Kind)
		}
		if value != "" {
			resolved[name] = value
		}
	}

	return resolved, nil
}

func (t Template) accepts(name string) bool {
	if _, ok := t.Defaults[name]; ok {
		return true
	}
	return slices.Contains(t.Optional, name)
}

// Catalog is the static registry of template kinds.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	templates map[string]Template
}

// NewCatalog builds a catalog from the given templates.
// Template defaults are copied, so the catalog never observes later mutation.
func NewCatalog(templates ...Template) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]Template, len(templates))}

	for _, t := range templates {
		if strings.TrimSpace(t.Kind) == "" || t.Render == nil {
			return nil, fmt.Errorf("%w: kind %q", ErrInvalidTemplate, t.Kind)
		}
		if _, ok := c.templates[t.Kind]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTemplate, t.Kind)
		}
		t.Defaults = maps.Clone(t.Defaults)
		t.Optional = slices.Clone(t.Optional)
		c.templates[t.Kind] = t
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
// Use it for package-level catalogs built from static definitions.
func MustCatalog(templates ...Template) *Catalog {
	c, err := NewCatalog(templates...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns a copy of the template registered under kind.
// Changing its Defaults or Optional does not affect the catalog.
func (c *Catalog) Lookup(kind string) (Template, error) {
	t, err := c.template(kind)
	if err != nil {
		return Template{}, err
	}
	t.Defaults = maps.Clone(t.Defaults)
	t.Optional = slices.Clone(t.Optional)
	return t, nil
}

func (c *Catalog) template(kind string) (Template, error) {
	t, ok := c.templates[kind]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}
	return t, nil
}

// Kinds returns the registered template kinds, sorted.
func (c *Catalog) Kinds() []string {
	return slices.Sorted(maps.Keys(c.templates))
}

// Render resolves params against the template defaults and renders the document.
// Identical input always yields a structurally identical document.
func (c *Catalog) Render(kind string, params Params) (Document, error) {
	t, err := c.template(kind)
	if err != nil {
		return Document{}, err
	}

	resolved, err := t.Resolve(params)
	if err != nil {
		return Document{}, err
	}

	return t.Render(resolved), nil
}

// Subject returns the template's default subject for params,
// or "" if the template does not define one.
func (c *Catalog) Subject(kind string, params Params) (string, error) {
	t, err := c.template(kind)
	if err != nil {
		return "", err
	}
	if t.Subject == nil {
		return "", nil
	}

	resolved, err := t.Resolve(params)
	if err != nil {
		return "", err
	}

	return t.Subject(resolved), nil
}
