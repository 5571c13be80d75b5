// ABOUTME: Loads the API endpoint catalog from YAML, embedded by default or from an on-disk override.
// ABOUTME: The catalog drives the docs command: endpoint groups, methods, paths, and per-topic markdown.

package apidoc

import (
	"embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data
var dataFS embed.FS

// Endpoint describes one remote API operation.
type Endpoint struct {
	Method  string `yaml:"method"`
	Path    string `yaml:"path"`
	Summary string `yaml:"summary"`
}

// Group is a named set of endpoints sharing a resource, with an optional
// markdown topic document.
type Group struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Topic       string     `yaml:"topic,omitempty"` // markdown file under data/, without extension
	Endpoints   []Endpoint `yaml:"endpoints"`
}

// Catalog is the full endpoint catalog.
type Catalog struct {
	BaseURL string  `yaml:"baseUrl"`
	Groups  []Group `yaml:"groups"`
}

// Load parses the embedded default catalog.
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalog: %w", err)
	}
	return parse(raw)
}

// LoadFile parses a catalog from an on-disk YAML file, for workspaces that
// ship their own endpoint descriptions.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(cat.Groups) == 0 {
		return nil, fmt.Errorf("catalog has no endpoint groups")
	}
	return &cat, nil
}

// Group returns the named group, case-sensitively.
func (c *Catalog) Group(name string) (*Group, bool) {
	for i := range c.Groups {
		if c.Groups[i].Name == name {
			return &c.Groups[i], true
		}
	}
	return nil, false
}

// Topics returns the names of all groups that carry a markdown topic
// document, sorted.
func (c *Catalog) Topics() []string {
	var out []string
	for _, g := range c.Groups {
		if g.Topic != "" {
			out = append(out, g.Name)
		}
	}
	sort.Strings(out)
	return out
}

// TopicSource returns the markdown source for a group's topic document.
func (c *Catalog) TopicSource(name string) ([]byte, error) {
	g, ok := c.Group(name)
	if !ok || g.Topic == "" {
		return nil, fmt.Errorf("no documentation topic %q", name)
	}
	raw, err := dataFS.ReadFile("data/" + g.Topic + ".md")
	if err != nil {
		return nil, fmt.Errorf("reading topic %q: %w", name, err)
	}
	return raw, nil
}
