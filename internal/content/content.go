// Package content holds the fixed display data of the landing page:
// industries, technology categories and the static copy around them.
package content

import (
	"errors"
	"fmt"
)

// Section identifies a scrollable region of the page.
type Section string

const (
	SectionIndustries   Section = "industries"
	SectionTechnologies Section = "technologies"
	SectionAbout        Section = "about"
	SectionContact      Section = "contact"
)

// sections lists the navigable sections in page order.
var sections = []Section{
	SectionIndustries,
	SectionTechnologies,
	SectionAbout,
	SectionContact,
}

// Label returns the human-readable name used in the navigation bar.
func (s Section) Label() string {
	switch s {
	case SectionIndustries:
		return "Industries"
	case SectionTechnologies:
		return "Technologies"
	case SectionAbout:
		return "About"
	case SectionContact:
		return "Contact"
	default:
		return string(s)
	}
}

// Industry is one card of the industries grid.
type Industry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// Technology is one tab of the technologies panel.
type Technology struct {
	Key         string `json:"key" yaml:"key"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Icon        string `json:"icon" yaml:"icon"`
}

// Registry is an immutable, ordered view over the page content.
// All accessors return copies, so callers cannot mutate it.
type Registry struct {
	industries   []Industry
	technologies []Technology
	index        map[string]int
}

// New builds a Registry. Technology order defines tab order; keys must be
// unique and non-empty and at least one technology is required.
func New(industries []Industry, technologies []Technology) (*Registry, error) {
	if len(technologies) == 0 {
		return nil, errors.New("content: at least one technology is required")
	}

	r := &Registry{
		industries:   append([]Industry(nil), industries...),
		technologies: append([]Technology(nil), technologies...),
		index:        make(map[string]int, len(technologies)),
	}
	for i, t := range r.technologies {
		if t.Key == "" {
			return nil, fmt.Errorf("content: technology %d has an empty key", i)
		}
		if _, dup := r.index[t.Key]; dup {
			return nil, fmt.Errorf("content: duplicate technology key %q", t.Key)
		}
		r.index[t.Key] = i
	}
	return r, nil
}

// Industries returns the industries in display order.
func (r *Registry) Industries() []Industry {
	return append([]Industry(nil), r.industries...)
}

// Technologies returns the technologies in tab order.
func (r *Registry) Technologies() []Technology {
	return append([]Technology(nil), r.technologies...)
}

// Technology looks up a technology by key.
func (r *Registry) Technology(key string) (Technology, bool) {
	i, ok := r.index[key]
	if !ok {
		return Technology{}, false
	}
	return r.technologies[i], true
}

// Keys returns the technology keys in tab order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.technologies))
	for i, t := range r.technologies {
		keys[i] = t.Key
	}
	return keys
}

// FirstKey returns the key of the first tab, the initial selection.
func (r *Registry) FirstKey() string {
	return r.technologies[0].Key
}

// Sections returns the navigable sections in page order.
func (r *Registry) Sections() []Section {
	return append([]Section(nil), sections...)
}

// IsSection reports whether s is a section the page renders.
func (r *Registry) IsSection(s Section) bool {
	for _, known := range sections {
		if known == s {
			return true
		}
	}
	return false
}
