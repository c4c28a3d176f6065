package campaign

import "bannergen/internal/core/domain"

const assetBase = "https://raw.githubusercontent.com/customizeditcorp/C3-Marketing-Hub/main/assets/jv-roofing/"

// JVRoofing returns the built-in campaign: three social formats sharing one
// background, logo, three certification badges and one block of copy.
func JVRoofing() *Campaign {
	return &Campaign{
		Brand: "jv_roofing",
		Title: "JV ROOFING",
		Templates: []domain.Template{
			{Name: "Stories 9:16", UID: "l9E7G65kozz35PLe3R"},
			{Name: "Feed 4:5", UID: "Kp21rAZj1y3eb6eLnd"},
			{Name: "Feed 1:1", UID: "8BK3vWZJ7a3y5Jzk1a"},
		},
		Assets: []domain.Named{
			{Name: "background_image", Value: assetBase + "222A2584copia.jpg"},
			{Name: "logo", Value: assetBase + "JVrofiinglogoFullcolor.svg"},
			{Name: "badge_gaf", Value: assetBase + "badge_gaf.png"},
			{Name: "badge_malarkey", Value: assetBase + "badge_malarkey.png"},
			{Name: "badge_cslb", Value: assetBase + "badge_cslb.png"},
		},
		Copy: []domain.Named{
			{Name: "headline", Value: "Leaking Roof? Storm Damage?"},
			{Name: "subtitle", Value: "⭐5.0 Licensed Roofers • Serving SLO Since 2010"},
			{Name: "cta", Value: "Book Free Estimate"},
		},
		Layout: []Field{
			{Name: "background_image", Kind: ImageField},
			{Name: "logo", Kind: ImageField},
			{Name: "headline", Kind: TextField, MaxLen: 100},
			{Name: "subtitle", Kind: TextField, MaxLen: 200},
			{Name: "cta", Kind: TextField, MaxLen: 50},
			{Name: "badge_gaf", Kind: ImageField},
			{Name: "badge_malarkey", Kind: ImageField},
			{Name: "badge_cslb", Kind: ImageField},
		},
	}
}
