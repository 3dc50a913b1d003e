package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/petgarden/internal/models"
)

// File is the YAML document used to import and export a catalog.
type File struct {
	Rules []models.PointRule `yaml:"rules,omitempty"`
	Items []models.ShopItem  `yaml:"items,omitempty"`
}

// DecodeFile parses a catalog document.
func DecodeFile(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return File{}, fmt.Errorf("catalog file is empty")
		}
		return File{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	for _, r := range f.Rules {
		if err := checkRule(r); err != nil {
			return File{}, err
		}
	}
	for _, it := range f.Items {
		if err := checkItem(it); err != nil {
			return File{}, err
		}
		if _, err := models.ParseItemType(string(it.Type)); err != nil {
			return File{}, fmt.Errorf("item %s: %w", it.ID, err)
		}
		if it.Type == models.ItemTypeColor {
			if _, err := it.Hue(); err != nil {
				return File{}, err
			}
		}
	}
	return f, nil
}

// EncodeFile writes the catalog as YAML.
func EncodeFile(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Rules: c.Rules(), Items: c.Items()}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

// Import bulk-replaces every section present in f. Sections that are absent
// keep their current contents.
func (c *Catalog) Import(f File) error {
	rules, items := c.rules, c.items
	var err error
	if len(f.Rules) > 0 {
		if rules, err = buildRules(f.Rules); err != nil {
			return err
		}
	}
	if len(f.Items) > 0 {
		if items, err = buildItems(f.Items); err != nil {
			return err
		}
	}
	c.rules, c.items = rules, items
	return nil
}
