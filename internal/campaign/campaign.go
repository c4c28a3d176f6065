// Package campaign describes a fixed set of templates together with the brand
// assets and copy text substituted into each of them.
package campaign

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"bannergen/internal/core/domain"
)

// FieldKind selects how a layout field is filled.
type FieldKind int

const (
	TextField FieldKind = iota
	ImageField
)

// Field is one named layer in the templates' layout.
type Field struct {
	Name   string
	Kind   FieldKind
	MaxLen int // max characters for text fields; 0 means unlimited
}

// Campaign is everything needed to render one brand's template set.
type Campaign struct {
	Brand     string // file name prefix, e.g. "jv_roofing"
	Title     string // report heading, e.g. "JV ROOFING"
	Templates []domain.Template
	Assets    []domain.Named
	Copy      []domain.Named
	Layout    []Field
}

var ErrInvalidCampaign = errors.New("invalid campaign")

// Validate checks the campaign before any remote call is made.
func (c *Campaign) Validate() error {
	if c.Brand == "" {
		return fmt.Errorf("%w: brand is empty", ErrInvalidCampaign)
	}
	if len(c.Templates) == 0 {
		return fmt.Errorf("%w: no templates configured", ErrInvalidCampaign)
	}

	seen := make(map[string]bool, len(c.Templates))
	for i, t := range c.Templates {
		if t.Name == "" || t.UID == "" {
			return fmt.Errorf("%w: template %d is missing a name or uid", ErrInvalidCampaign, i)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: duplicate template %q", ErrInvalidCampaign, t.Name)
		}
		seen[t.Name] = true
	}

	for _, f := range c.Layout {
		v, ok := c.lookup(f)
		if !ok {
			return fmt.Errorf("%w: no value for field %q", ErrInvalidCampaign, f.Name)
		}
		if n := utf8.RuneCountInString(v); f.MaxLen > 0 && n > f.MaxLen {
			return fmt.Errorf("%w: field %q is %d characters, max %d", ErrInvalidCampaign, f.Name, n, f.MaxLen)
		}
	}
	return nil
}

// Modifications resolves the layout into the substitutions sent with every job.
func (c *Campaign) Modifications() []domain.Modification {
	mods := make([]domain.Modification, 0, len(c.Layout))
	for _, f := range c.Layout {
		v, _ := c.lookup(f)
		m := domain.Modification{Name: f.Name}
		if f.Kind == ImageField {
			m.ImageURL = v
		} else {
			m.Text = v
		}
		mods = append(mods, m)
	}
	return mods
}

// FileName returns the deterministic output name for a template's image.
func (c *Campaign) FileName(t domain.Template) string {
	return fmt.Sprintf("%s_%s_FINAL.png", c.Brand, t.Slug())
}

func (c *Campaign) lookup(f Field) (string, bool) {
	src := c.Copy
	if f.Kind == ImageField {
		src = c.Assets
	}
	for _, n := range src {
		if n.Name == f.Name && n.Value != "" {
			return n.Value, true
		}
	}
	return "", false
}
