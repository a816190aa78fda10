package palette

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed palettes.toml
var builtinCatalog []byte

// Palette is a named, ordered list of colours.
type Palette struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

type catalogFile struct {
	Default  string    `toml:"default"`
	Palettes []Palette `toml:"palette"`
}

// Catalog holds the selectable palettes in declaration order.
type Catalog struct {
	ordered  []Palette
	byName   map[string]int
	fallback string
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode palette catalog: %w", err)
	}
	if len(file.Palettes) == 0 {
		return nil, fmt.Errorf("palette catalog is empty")
	}

	c := &Catalog{
		ordered: make([]Palette, 0, len(file.Palettes)),
		byName:  make(map[string]int, len(file.Palettes)),
	}
	for _, p := range file.Palettes {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("palette name is required")
		}
		if len(p.Colors) == 0 {
			return nil, fmt.Errorf("palette %q has no colors", name)
		}
		key := strings.ToLower(name)
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("duplicate palette %q", name)
		}
		c.byName[key] = len(c.ordered)
		c.ordered = append(c.ordered, Palette{Name: name, Colors: append([]string(nil), p.Colors...)})
	}

	c.fallback = c.ordered[0].Name
	if file.Default != "" {
		if _, ok := c.Get(file.Default); !ok {
			return nil, fmt.Errorf("default palette %q is not declared", file.Default)
		}
		c.fallback = file.Default
	}

	return c, nil
}

var builtin = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(builtinCatalog)
})

// Builtin returns the embedded catalog.
func Builtin() (*Catalog, error) {
	return builtin()
}

func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.ordered))
	for _, p := range c.ordered {
		out = append(out, p.Name)
	}
	return out
}

func (c *Catalog) All() []Palette {
	out := make([]Palette, 0, len(c.ordered))
	for _, p := range c.ordered {
		out = append(out, Palette{Name: p.Name, Colors: append([]string(nil), p.Colors...)})
	}
	return out
}

func (c *Catalog) Get(name string) (Palette, bool) {
	idx, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Palette{}, false
	}
	return c.ordered[idx], true
}

func (c *Catalog) DefaultName() string {
	return c.fallback
}

// Resolve returns the named palette, or the catalog default when the name is unknown or empty.
func (c *Catalog) Resolve(name string) Palette {
	if p, ok := c.Get(name); ok {
		return p
	}
	p, _ := c.Get(c.fallback)
	return p
}
