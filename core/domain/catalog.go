// ABOUTME: Fixed catalogs offered by the form: brand tones, length options and models
// ABOUTME: Lookups are case-insensitive and return ok=false for unknown entries

package domain

import "strings"

// Brand pairs a brand name with the tone paragraph inserted into prompts
type Brand struct {
	Name string `json:"name"`
	Tone string `json:"tone"`
}

// LengthOption maps a form label to a minimum body word count
type LengthOption struct {
	Label string `json:"label"`
	Words int    `json:"words"`
}

// DefaultModel is used when a request does not name a model
const DefaultModel = "gpt-4o"

var brands = []Brand{
	{Name: "Cotton On", Tone: "At Cotton On, we’re casual and informal—just like the fashion we’re known for..."},
	{Name: "Cotton On Kids", Tone: "Cotton On Kids is the go-to for baby and kids clothing essentials and trends..."},
	{Name: "Cotton On Body", Tone: "Cotton On Body empowers women to show up for themselves and each other..."},
	{Name: "Factorie", Tone: "Factorie is the go-to youth street fashion brand..."},
	{Name: "Rubi", Tone: "Rubi believes no outfit is complete without the finishing touches..."},
	{Name: "Typo", Tone: "Typo breaks the rules—where creativity and contradictions collide..."},
	{Name: "Supre", Tone: "Supre is your go-to for trend-driven fashion, denim and amazing basics..."},
	{Name: "Ceres Life", Tone: "Ceres Life makes everyday outfitting effortless..."},
}

var lengthOptions = []LengthOption{
	{Label: "Short (~750 words)", Words: 750},
	{Label: "Medium (~1000 words)", Words: 1000},
	{Label: "Long (~1500 words)", Words: 1500},
}

var models = []string{"gpt-4o", "gpt-4.1", "gpt-4-turbo", "gpt-4", "gpt-3.5-turbo"}

// Brands returns the brand catalog in display order
func Brands() []Brand {
	out := make([]Brand, len(brands))
	copy(out, brands)
	return out
}

// LookupBrand finds a brand by name
func LookupBrand(name string) (Brand, bool) {
	name = strings.TrimSpace(name)
	for _, b := range brands {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Brand{}, false
}

// LengthOptions returns the length options in display order
func LengthOptions() []LengthOption {
	out := make([]LengthOption, len(lengthOptions))
	copy(out, lengthOptions)
	return out
}

// LookupLength finds a length option by its label or by a short name ("short", "medium", "long")
func LookupLength(label string) (LengthOption, bool) {
	label = strings.TrimSpace(label)
	for _, l := range lengthOptions {
		if strings.EqualFold(l.Label, label) {
			return l, true
		}
		short, _, _ := strings.Cut(l.Label, " ")
		if strings.EqualFold(short, label) {
			return l, true
		}
	}
	return LengthOption{}, false
}

// Models returns the supported model identifiers
func Models() []string {
	out := make([]string, len(models))
	copy(out, models)
	return out
}

// IsSupportedModel reports whether the model can be requested
func IsSupportedModel(model string) bool {
	for _, m := range models {
		if m == model {
			return true
		}
	}
	return false
}
