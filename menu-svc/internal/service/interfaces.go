package service

import (
	"context"
	"errors"
	"time"

	"overcooked-menu/menu-svc/internal/domain"
)

var (
	ErrStoreUnavailable = errors.New("snapshot store unavailable")
	ErrInvalidDate      = errors.New("invalid business date")
	ErrDuplicateHash    = errors.New("hash assigned to more than one lineage")
	ErrNotFound         = errors.New("not found")
	ErrMalformedRecord  = errors.New("malformed scrape record")
)

type SortOrder int

const (
	ScrapedAscending SortOrder = iota
	ScrapedDescending
)

// SnapshotQuery selects snapshots for one (location, menu type, business
// date) key. Bounds on the scrape time are inclusive and optional.
type SnapshotQuery struct {
	LocationSlug      string
	MenuTypeSlug      string
	Date              string
	ScrapedAtOrBefore *time.Time
	ScrapedAtOrAfter  *time.Time
	Order             SortOrder
	Limit             int
}

type SnapshotStore interface {
	FindSnapshots(ctx context.Context, query SnapshotQuery) ([]domain.Snapshot, error)
	ScanHashSightings(ctx context.Context, fn func(domain.HashSighting) error) error
	LatestOccurrence(ctx context.Context, hashes []string) (*domain.Occurrence, error)
	DistinctMenus(ctx context.Context) ([]domain.MenuKey, error)
	DistinctFoodProperties(ctx context.Context) ([]domain.FoodProperty, error)
	AppendSnapshot(ctx context.Context, snapshot *domain.Snapshot) error
}

type VersionCache interface {
	Get(ctx context.Context, key string) (*domain.VersionPointer, bool, error)
	Put(ctx context.Context, key string, version domain.VersionPointer) error
	Delete(ctx context.Context, key string) error
}

type LineageStore interface {
	Load() (map[string][]string, error)
	Save(lineages map[string][]string) error
}

type LocationStore interface {
	Load() (map[string]domain.Location, error)
	Save(locations map[string]domain.Location) error
}

type FoodPropertyStore interface {
	Load() (map[string]domain.FoodProperty, error)
	Save(properties map[string]domain.FoodProperty) error
}

type LineagePublisher interface {
	PublishGrowth(ctx context.Context, growth domain.LineageGrowth) error
}

type QREncoder interface {
	Encode(content string) ([]byte, error)
}

type Lineages interface {
	LineageOf(hash string) []string
}

type LatestVersionResolver interface {
	ResolveLatest(ctx context.Context, hash string) (*domain.VersionPointer, error)
}

type MenuServiceInterface interface {
	GetMenu(ctx context.Context, date, locationSlug, menuTypeSlug string) (*domain.Menu, error)
	GetLatestVersion(ctx context.Context, hash string) (*domain.VersionPointer, error)
	GetMonthlyView(ctx context.Context, year, month int, locationSlug, menuTypeSlug string) ([]domain.MonthlyViewDay, error)
	Locations() []domain.Location
	FoodProperties() []domain.FoodProperty
	ItemQRCode(ctx context.Context, hash string) ([]byte, error)
}

var (
	_ MenuServiceInterface  = (*MenuService)(nil)
	_ LatestVersionResolver = (*VersionResolver)(nil)
	_ Lineages              = (*LineageRegistry)(nil)
)
