package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// BusinessDateLayout is the layout of every business date handled by the
// service.
const BusinessDateLayout = "2006-01-02"

// Snapshot is one scrape of one day's menu. The JSON shape matches the
// documents the scraper publishes.
type Snapshot struct {
	ID           int64        `json:"id,omitempty"`
	LocationSlug string       `json:"slug"`
	MenuTypeSlug string       `json:"menu_type_slug"`
	Date         string       `json:"date"`
	ScrapedAt    time.Time    `json:"scraping_date"`
	Result       ScrapeResult `json:"scraping_result"`
}

// ScrapeResult is the raw upstream payload for a single day. A nil MenuInfo
// or MenuItems means the field was absent from the feed.
type ScrapeResult struct {
	Date      string                 `json:"date"`
	MenuInfo  map[string]SectionInfo `json:"menu_info"`
	MenuItems []RawItem              `json:"menu_items"`
}

// StampHashes fingerprints every item and records the hash on it. Items
// without a food description keep an empty hash. It returns the number of
// items that were stamped.
func (r *ScrapeResult) StampHashes() int {
	stamped := 0
	for i := range r.MenuItems {
		item, ok := Fingerprint(r.MenuItems[i])
		if !ok {
			r.MenuItems[i].Hash = ""
			continue
		}
		r.MenuItems[i].Hash = item.Hash
		stamped++
	}
	return stamped
}

type SectionInfo struct {
	Position       int             `json:"position"`
	SectionOptions *SectionOptions `json:"section_options"`
}

type SectionOptions struct {
	DisplayName Scalar `json:"display_name"`
}

type RawItem struct {
	MenuID   Scalar   `json:"menu_id"`
	Position int      `json:"position"`
	Food     *RawFood `json:"food"`
	Hash     string   `json:"hash,omitempty"`
}

type RawFood struct {
	Name                 string            `json:"name"`
	Ingredients          string            `json:"ingredients"`
	RoundedNutritionInfo map[string]Scalar `json:"rounded_nutrition_info"`
	Icons                FoodIcons         `json:"icons"`
	ServingSizeInfo      ServingSizeInfo   `json:"serving_size_info"`
}

type FoodIcons struct {
	FoodIcons []FoodIcon `json:"food_icons"`
}

type FoodIcon struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	HelpText string `json:"help_text"`
}

type ServingSizeInfo struct {
	ServingSizeAmount Scalar `json:"serving_size_amount"`
	ServingSizeUnit   Scalar `json:"serving_size_unit"`
}

// Scalar keeps a JSON string or number verbatim. The upstream feed is not
// consistent about which of the two it sends for ids and amounts.
type Scalar struct {
	raw json.RawMessage
}

// NewScalar returns a Scalar holding the string s.
func NewScalar(s string) Scalar {
	raw, _ := json.Marshal(s)
	return Scalar{raw: raw}
}

// NumberScalar returns a Scalar holding the numeric literal n, e.g. "238".
func NumberScalar(n string) Scalar {
	return Scalar{raw: json.RawMessage(n)}
}

// Valid reports whether the scalar was present and not null.
func (s Scalar) Valid() bool {
	return len(s.raw) > 0 && !bytes.Equal(s.raw, []byte("null"))
}

// String renders the scalar as text; strings are unquoted, absent values are
// empty.
func (s Scalar) String() string {
	if !s.Valid() {
		return ""
	}
	if s.raw[0] == '"' {
		var text string
		if err := json.Unmarshal(s.raw, &text); err == nil {
			return text
		}
	}
	return string(s.raw)
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	s.raw = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return []byte("null"), nil
	}
	return s.raw, nil
}
