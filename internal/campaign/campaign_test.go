package campaign

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bannergen/internal/core/domain"
)

func TestJVRoofingIsValid(t *testing.T) {
	c := JVRoofing()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Templates, 3)
}

func TestModifications(t *testing.T) {
	mods := JVRoofing().Modifications()
	require.Len(t, mods, 8)

	assert.Equal(t, "background_image", mods[0].Name)
	assert.Contains(t, mods[0].ImageURL, "222A2584copia.jpg")
	assert.Empty(t, mods[0].Text)

	assert.Equal(t, "headline", mods[2].Name)
	assert.Equal(t, "Leaking Roof? Storm Damage?", mods[2].Text)
	assert.Empty(t, mods[2].ImageURL)

	assert.Equal(t, "badge_cslb", mods[7].Name)
}

func TestFileName(t *testing.T) {
	c := JVRoofing()
	tests := []struct {
		name string
		want string
	}{
		{"Stories 9:16", "jv_roofing_stories_9x16_FINAL.png"},
		{"Feed 4:5", "jv_roofing_feed_4x5_FINAL.png"},
		{"Feed 1:1", "jv_roofing_feed_1x1_FINAL.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.FileName(domain.Template{Name: tt.name}))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Campaign)
	}{
		{"no brand", func(c *Campaign) { c.Brand = "" }},
		{"no templates", func(c *Campaign) { c.Templates = nil }},
		{"missing uid", func(c *Campaign) { c.Templates[1].UID = "" }},
		{"duplicate name", func(c *Campaign) { c.Templates[2].Name = c.Templates[0].Name }},
		{"unknown asset", func(c *Campaign) { c.Layout = append(c.Layout, Field{Name: "badge_bbb", Kind: ImageField}) }},
		{"empty copy", func(c *Campaign) { c.Copy[0].Value = "" }},
		{"headline too long", func(c *Campaign) { c.Copy[0].Value = strings.Repeat("x", 101) }},
		{"subtitle too long", func(c *Campaign) { c.Copy[1].Value = strings.Repeat("x", 201) }},
		{"cta too long", func(c *Campaign) { c.Copy[2].Value = strings.Repeat("y", 51) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := JVRoofing()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidCampaign)
		})
	}
}

func TestValidateLengthLimitsAreInclusive(t *testing.T) {
	c := JVRoofing()
	c.Copy[0].Value = strings.Repeat("x", 100)
	c.Copy[1].Value = strings.Repeat("⭐", 200)
	c.Copy[2].Value = strings.Repeat("y", 50)
	assert.NoError(t, c.Validate())
}
