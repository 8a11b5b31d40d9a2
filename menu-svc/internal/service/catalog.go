package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"overcooked-menu/menu-svc/internal/domain"
)

// CatalogRegistry holds the location and food property catalogs. Entries
// discovered in the snapshot store are added hidden; entries already in the
// persisted catalog are never overwritten, so display names and visibility
// can be curated by hand.
type CatalogRegistry struct {
	store      SnapshotStore
	locations  LocationStore
	properties FoodPropertyStore
	logger     *slog.Logger

	reconcileMu sync.Mutex

	mu            sync.RWMutex
	locationIndex map[string]domain.Location
	propertyIndex map[string]domain.FoodProperty
}

func NewCatalogRegistry(store SnapshotStore, locations LocationStore, properties FoodPropertyStore, logger *slog.Logger) *CatalogRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogRegistry{
		store:         store,
		locations:     locations,
		properties:    properties,
		logger:        logger,
		locationIndex: map[string]domain.Location{},
		propertyIndex: map[string]domain.FoodProperty{},
	}
}

func (c *CatalogRegistry) Load() error {
	locations, err := c.locations.Load()
	if err != nil {
		return fmt.Errorf("load locations: %w", err)
	}
	properties, err := c.properties.Load()
	if err != nil {
		return fmt.Errorf("load food properties: %w", err)
	}

	c.mu.Lock()
	c.locationIndex = locations
	c.propertyIndex = properties
	c.mu.Unlock()
	return nil
}

// Reconcile merges every (location, menu type) pair and food property seen
// in the snapshot store into the persisted catalogs.
func (c *CatalogRegistry) Reconcile(ctx context.Context) error {
	c.reconcileMu.Lock()
	defer c.reconcileMu.Unlock()

	locations, err := c.locations.Load()
	if err != nil {
		return fmt.Errorf("load locations: %w", err)
	}
	properties, err := c.properties.Load()
	if err != nil {
		return fmt.Errorf("load food properties: %w", err)
	}
	if locations == nil {
		locations = map[string]domain.Location{}
	}
	if properties == nil {
		properties = map[string]domain.FoodProperty{}
	}

	menus, err := c.store.DistinctMenus(ctx)
	if err != nil {
		return fmt.Errorf("%w: distinct menus: %w", ErrStoreUnavailable, err)
	}
	discovered, err := c.store.DistinctFoodProperties(ctx)
	if err != nil {
		return fmt.Errorf("%w: distinct food properties: %w", ErrStoreUnavailable, err)
	}

	newLocations, newMenuTypes := mergeMenus(locations, menus)
	newProperties := 0
	for _, property := range discovered {
		if _, exists := properties[property.Slug]; exists {
			continue
		}
		property.Displayed = false
		if property.Name == "" {
			property.Name = property.Slug
		}
		properties[property.Slug] = property
		newProperties++
	}

	if err := c.locations.Save(locations); err != nil {
		return fmt.Errorf("save locations: %w", err)
	}
	if err := c.properties.Save(properties); err != nil {
		return fmt.Errorf("save food properties: %w", err)
	}

	c.mu.Lock()
	c.locationIndex = locations
	c.propertyIndex = properties
	c.mu.Unlock()

	c.logger.Info("catalog reconciled",
		"new_locations", newLocations, "new_menu_types", newMenuTypes, "new_food_properties", newProperties)
	return nil
}

func mergeMenus(locations map[string]domain.Location, menus []domain.MenuKey) (newLocations, newMenuTypes int) {
	for _, menu := range menus {
		location, exists := locations[menu.LocationSlug]
		if !exists {
			location = domain.Location{Slug: menu.LocationSlug, Name: menu.LocationSlug}
			newLocations++
		}
		known := false
		for _, menuType := range location.MenuTypes {
			if menuType.Slug == menu.MenuTypeSlug {
				known = true
				break
			}
		}
		if !known {
			location.MenuTypes = append(location.MenuTypes, domain.MenuType{
				Slug: menu.MenuTypeSlug,
				Name: menu.MenuTypeSlug,
			})
			if exists {
				newMenuTypes++
			}
		}
		locations[menu.LocationSlug] = location
	}
	return newLocations, newMenuTypes
}

// Locations returns the catalog sorted by slug.
func (c *CatalogRegistry) Locations() []domain.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Location, 0, len(c.locationIndex))
	for _, location := range c.locationIndex {
		location.MenuTypes = append([]domain.MenuType(nil), location.MenuTypes...)
		out = append(out, location)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// FoodProperties returns the catalog sorted by slug.
func (c *CatalogRegistry) FoodProperties() []domain.FoodProperty {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.FoodProperty, 0, len(c.propertyIndex))
	for _, property := range c.propertyIndex {
		out = append(out, property)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
