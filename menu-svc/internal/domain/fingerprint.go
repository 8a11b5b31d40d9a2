package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

const (
	fieldSeparator = 0x1f
	blockSeparator = 0x1d
	absentValue    = 0x1e
)

// Fingerprint normalises a scraped item into a MenuItem and derives its
// content hash. It returns false when the item has no food description.
//
// The digest covers, in order: nutrition facts sorted by slug, food property
// slugs sorted, name, ingredients, serving amount and serving unit. Text is
// hashed exactly as scraped; no whitespace or case folding is applied.
func Fingerprint(raw RawItem) (MenuItem, bool) {
	food := raw.Food
	if food == nil {
		return MenuItem{}, false
	}

	digest := xxhash.New()
	writeField := func(value string) {
		_, _ = digest.WriteString(value)
		_, _ = digest.Write([]byte{fieldSeparator})
	}
	writeScalar := func(value Scalar) {
		if !value.Valid() {
			_, _ = digest.Write([]byte{absentValue, fieldSeparator})
			return
		}
		writeField(value.String())
	}

	var nutrition []NutritionFact
	if food.RoundedNutritionInfo != nil {
		slugs := make([]string, 0, len(food.RoundedNutritionInfo))
		for slug := range food.RoundedNutritionInfo {
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)

		nutrition = make([]NutritionFact, 0, len(slugs))
		for _, slug := range slugs {
			value := food.RoundedNutritionInfo[slug]
			writeField(slug)
			writeScalar(value)

			fact := NutritionFact{Slug: slug}
			if value.Valid() {
				amount := value.String()
				fact.Amount = &amount
			}
			nutrition = append(nutrition, fact)
		}
	}
	_, _ = digest.Write([]byte{blockSeparator})

	properties := make([]string, 0, len(food.Icons.FoodIcons))
	for _, icon := range food.Icons.FoodIcons {
		properties = append(properties, icon.Slug)
	}
	sort.Strings(properties)
	for _, slug := range properties {
		writeField(slug)
	}
	_, _ = digest.Write([]byte{blockSeparator})

	writeField(food.Name)
	writeField(food.Ingredients)
	writeScalar(food.ServingSizeInfo.ServingSizeAmount)
	writeScalar(food.ServingSizeInfo.ServingSizeUnit)

	return MenuItem{
		Name:                 food.Name,
		FoodProperties:       properties,
		NutritionInformation: nutrition,
		Ingredients:          food.Ingredients,
		ServingSize: ServingSize{
			Amount: food.ServingSizeInfo.ServingSizeAmount.String(),
			Unit:   food.ServingSizeInfo.ServingSizeUnit.String(),
		},
		Hash: fmt.Sprintf("%016x", digest.Sum64()),
	}, true
}
