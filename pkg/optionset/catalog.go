package optionset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog describes one expertise field: the select's id and name, the
// visible copy, and its options.
type Catalog struct {
	ID             string   `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Label          string   `yaml:"label" json:"label"`
	AddLabel       string   `yaml:"add_label" json:"add_label"`
	NoResultsLabel string   `yaml:"no_results_label" json:"no_results_label"`
	Options        []Option `yaml:"options" json:"options"`
}

// UnmarshalYAML accepts either a bare scalar label or a mapping.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Label = node.Value
		return nil
	}
	type plain Option
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*o = Option(decoded)
	return nil
}

const (
	defaultCatalogID      = "expertise"
	defaultLabel          = "Expertise"
	defaultAddLabel       = "Add"
	defaultNoResultsLabel = "No expertise selected"
)

// Normalize sanitises options and fills defaults for empty copy fields.
func (c Catalog) Normalize() Catalog {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		c.ID = defaultCatalogID
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		c.Name = c.ID
	}
	if strings.TrimSpace(c.Label) == "" {
		c.Label = defaultLabel
	}
	if strings.TrimSpace(c.AddLabel) == "" {
		c.AddLabel = defaultAddLabel
	}
	if strings.TrimSpace(c.NoResultsLabel) == "" {
		c.NoResultsLabel = defaultNoResultsLabel
	}
	c.Options = Sanitize(c.Options)
	return c
}

// LoadYAML decodes and normalises a catalog.
func LoadYAML(r io.Reader) (Catalog, error) {
	if r == nil {
		return Catalog{}, errors.New("optionset: missing reader")
	}
	var catalog Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, errors.New("optionset: catalog is empty")
		}
		return Catalog{}, fmt.Errorf("optionset: decode catalog: %w", err)
	}
	return catalog.Normalize(), nil
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("optionset: read %s: %w", path, err)
	}
	catalog, err := LoadYAML(bytes.NewReader(data))
	if err != nil {
		return Catalog{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return catalog, nil
}

// Validate reports label issues in the catalog's options.
func (c Catalog) Validate() []Issue {
	return Validate(c.Options)
}

// WriteYAML encodes catalog in the format LoadYAML reads.
func WriteYAML(w io.Writer, catalog Catalog) error {
	if w == nil {
		return errors.New("optionset: missing writer")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalog); err != nil {
		return fmt.Errorf("optionset: encode catalog: %w", err)
	}
	return enc.Close()
}
