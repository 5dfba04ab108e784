package status

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"deliveryops/internal/pkg/errs"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed statuses.yml
var defaultCatalog []byte

// ErrStatusNotFound is returned by Resolve when neither a code nor a display name matches.
var ErrStatusNotFound = errors.New("status not found")

// Definition is the catalog entry for one status code.
type Definition struct {
	Code                  Code   `yaml:"code"`
	DisplayName           string `yaml:"displayName"`
	Icon                  string `yaml:"icon"`
	Color                 string `yaml:"color"`
	IsActive              bool   `yaml:"active"`
	RequiresDriverOnEntry bool   `yaml:"requiresDriverOnEntry"`
	AllowedSetterRoles    []Role `yaml:"setterRoles"`
}

// AllowsRole reports whether role may move an order into this status.
// An empty role list allows everyone.
func (d Definition) AllowsRole(role Role) bool {
	return len(d.AllowedSetterRoles) == 0 || slices.Contains(d.AllowedSetterRoles, role)
}

type catalogFile struct {
	Statuses []Definition `yaml:"statuses"`
}

// Registry is the read-only catalog of status definitions. It is built once
// at startup and shared by every request.
type Registry struct {
	ordered []Definition
	byCode  map[Code]Definition
	byName  map[string]Code
}

// NewRegistry validates defs and indexes them. Every code of the closed set
// must be defined exactly once.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		ordered: make([]Definition, 0, len(defs)),
		byCode:  make(map[Code]Definition, len(defs)),
		byName:  make(map[string]Code, len(defs)),
	}

	for i, d := range defs {
		if err := d.Code.Validate(); err != nil {
			return nil, fmt.Errorf("statuses[%d]: %w", i, err)
		}
		if _, dup := r.byCode[d.Code]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("duplicate code %q", d.Code))
		}
		for _, role := range d.AllowedSetterRoles {
			if err := role.Validate(); err != nil {
				return nil, fmt.Errorf("statuses[%d]: %w", i, err)
			}
		}
		d.DisplayName = strings.TrimSpace(d.DisplayName)
		if d.DisplayName == "" {
			d.DisplayName = string(d.Code)
		}
		d.AllowedSetterRoles = slices.Clone(d.AllowedSetterRoles)

		r.ordered = append(r.ordered, d)
		r.byCode[d.Code] = d
		r.byName[normalizeName(d.DisplayName)] = d.Code
	}

	for _, c := range Codes() {
		if _, ok := r.byCode[c]; !ok {
			return nil, errs.NewValueIsRequiredErrorWithCause("status", fmt.Errorf("code %q is not defined", c))
		}
	}

	return r, nil
}

// ParseCatalog builds a Registry from a YAML document.
func ParseCatalog(data []byte) (*Registry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse status catalog: %w", err)
	}
	return NewRegistry(f.Statuses)
}

// DefaultRegistry returns the embedded catalog.
func DefaultRegistry() *Registry {
	r, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded status catalog is invalid: %v", err))
	}
	return r
}

// LoadRegistry reads the catalog at path, or the embedded one when path is empty.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read status catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// Lookup returns the definition of code.
func (r *Registry) Lookup(code Code) (Definition, bool) {
	d, ok := r.byCode[code]
	return d, ok
}

// Resolve accepts either a code or a display name. Display names are compared
// after Unicode NFC normalisation and trimming.
func (r *Registry) Resolve(codeOrName string) (Definition, error) {
	s := strings.TrimSpace(codeOrName)
	if d, ok := r.byCode[Code(s)]; ok {
		return d, nil
	}
	if c, ok := r.byName[normalizeName(s)]; ok {
		return r.byCode[c], nil
	}
	return Definition{}, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%w: %q", ErrStatusNotFound, s))
}

// DisplayName returns the localized name for code, or the code itself when
// the registry does not know it.
func (r *Registry) DisplayName(code Code) string {
	if d, ok := r.byCode[code]; ok {
		return d.DisplayName
	}
	return string(code)
}

// All returns every definition in catalog order.
func (r *Registry) All() []Definition {
	return slices.Clone(r.ordered)
}

// Active returns the definitions that may be targeted by new transitions.
func (r *Registry) Active() []Definition {
	out := make([]Definition, 0, len(r.ordered))
	for _, d := range r.ordered {
		if d.IsActive {
			out = append(out, d)
		}
	}
	return out
}

func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
