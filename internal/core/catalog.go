package core

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var (
	ErrEmptyCatalog   = errors.New("catalog has no technologies")
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrDuplicateEntry = errors.New("duplicate catalog entry")
)

type catalogFile struct {
	Technologies []Technology `yaml:"technologies"`
}

// Catalog is the ordered list of technologies shown on the page. The zero
// value is empty; build one with ParseCatalog or NewCatalog.
type Catalog struct {
	techs []Technology
}

func NewCatalog(techs ...Technology) (Catalog, error) {
	if len(techs) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	seen := make(map[string]int, len(techs))
	for i, tech := range techs {
		if err := validateTechnology(tech); err != nil {
			return Catalog{}, fmt.Errorf("%w: entry %d: %v", ErrInvalidCatalog, i, err)
		}
		label := tech.Label()
		if prev, ok := seen[label]; ok {
			return Catalog{}, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateEntry, label, prev, i)
		}
		seen[label] = i
	}

	owned := make([]Technology, len(techs))
	copy(owned, techs)
	return Catalog{techs: owned}, nil
}

func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return NewCatalog(file.Technologies...)
}

func DefaultCatalog() Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Technologies returns a copy; the catalog order cannot be changed through it.
func (c Catalog) Technologies() []Technology {
	out := make([]Technology, len(c.techs))
	copy(out, c.techs)
	return out
}

func (c Catalog) Len() int {
	return len(c.techs)
}

func validateTechnology(tech Technology) error {
	if strings.TrimSpace(tech.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !tech.HasLink() {
		return nil
	}

	u, err := url.Parse(tech.Link)
	if err != nil {
		return fmt.Errorf("link %q: %w", tech.Link, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("link %q must be http or https", tech.Link)
	}
	if u.Host == "" {
		return fmt.Errorf("link %q has no host", tech.Link)
	}
	return nil
}
