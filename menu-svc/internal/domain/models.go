package domain

import "time"

type ServingSize struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type NutritionFact struct {
	Slug   string  `json:"slug"`
	Amount *string `json:"amount"`
}

type MenuItem struct {
	Name                 string          `json:"name"`
	FoodProperties       []string        `json:"food_properties"`
	NutritionInformation []NutritionFact `json:"nutrition_information"`
	Ingredients          string          `json:"ingredients"`
	ServingSize          ServingSize     `json:"serving_size"`
	Hash                 string          `json:"hash"`
}

// VersionPointer is the terminal "latest version" record. It has no
// latest-version field of its own, so resolution can never nest.
type VersionPointer struct {
	MenuItem MenuItem `json:"menu_item"`
	Date     string   `json:"date"`
}

type DatedMenuItem struct {
	MenuItem      MenuItem        `json:"menu_item"`
	Date          string          `json:"date"`
	LatestVersion *VersionPointer `json:"latest_version"`
}

type Section struct {
	Name      string          `json:"name"`
	MenuItems []DatedMenuItem `json:"menu_items"`
}

type Menu struct {
	Date     string    `json:"date"`
	Sections []Section `json:"sections"`
}

// HasMenuItems reports whether any section carries at least one item.
func (m *Menu) HasMenuItems() bool {
	if m == nil {
		return false
	}
	for _, section := range m.Sections {
		if len(section.MenuItems) > 0 {
			return true
		}
	}
	return false
}

type MonthlyViewDay struct {
	Day          string `json:"day"`
	HasMenuItems bool   `json:"has_menu_items"`
}

type MenuType struct {
	Slug      string `json:"slug" yaml:"slug"`
	Name      string `json:"name" yaml:"name"`
	Displayed bool   `json:"displayed" yaml:"displayed"`
}

type Location struct {
	Slug      string     `json:"slug" yaml:"slug"`
	Name      string     `json:"name" yaml:"name"`
	MenuTypes []MenuType `json:"menu_types" yaml:"menu_types"`
	Displayed bool       `json:"displayed" yaml:"displayed"`
}

type FoodProperty struct {
	Slug        string `json:"slug" yaml:"slug"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Displayed   bool   `json:"displayed" yaml:"displayed"`
}

// MenuKey identifies one (location, menu type) feed.
type MenuKey struct {
	LocationSlug string
	MenuTypeSlug string
}

// HashSighting pairs a fingerprint with the dish name it carried the first
// time it was scraped.
type HashSighting struct {
	Hash string
	Name string
}

// Occurrence is a single scraped item together with where it was seen.
type Occurrence struct {
	Date      string
	ScrapedAt time.Time
	Item      RawItem
}

// LineageGrowth records hashes appended to a lineage by one reconciliation
// pass. Previous is the lineage as it stood before the pass.
type LineageGrowth struct {
	Name     string   `json:"name"`
	Previous []string `json:"previous"`
	Added    []string `json:"added"`
}

// Hashes returns the lineage after the growth was applied.
func (g LineageGrowth) Hashes() []string {
	out := make([]string, 0, len(g.Previous)+len(g.Added))
	out = append(out, g.Previous...)
	return append(out, g.Added...)
}
