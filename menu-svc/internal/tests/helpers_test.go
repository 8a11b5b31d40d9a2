package tests

import (
	"io"
	"log/slog"
	"testing"

	"overcooked-menu/menu-svc/internal/domain"

	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func rawFood(name string) *domain.RawFood {
	return &domain.RawFood{
		Name:        name,
		Ingredients: name + " ingredients",
		RoundedNutritionInfo: map[string]domain.Scalar{
			"calories": domain.NumberScalar("300"),
			"protein":  domain.NewScalar("12g"),
		},
		Icons: domain.FoodIcons{FoodIcons: []domain.FoodIcon{
			{Slug: "vegetarian", Name: "Vegetarian"},
		}},
		ServingSizeInfo: domain.ServingSizeInfo{
			ServingSizeAmount: domain.NewScalar("1"),
			ServingSizeUnit:   domain.NewScalar("each"),
		},
	}
}

func rawItem(menuID string, position int, name string) domain.RawItem {
	return domain.RawItem{
		MenuID:   domain.NewScalar(menuID),
		Position: position,
		Food:     rawFood(name),
	}
}

func hashOf(t *testing.T, item domain.RawItem) string {
	t.Helper()
	menuItem, ok := domain.Fingerprint(item)
	require.True(t, ok)
	return menuItem.Hash
}
