package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/service"

	"github.com/lib/pq"
)

const Schema = `
CREATE TABLE IF NOT EXISTS menu_snapshots (
	id             BIGSERIAL PRIMARY KEY,
	location_slug  TEXT        NOT NULL,
	menu_type_slug TEXT        NOT NULL,
	business_date  DATE        NOT NULL,
	scraped_at     TIMESTAMPTZ NOT NULL,
	result         JSONB       NOT NULL
);
CREATE INDEX IF NOT EXISTS menu_snapshots_key_idx
	ON menu_snapshots (location_slug, menu_type_slug, business_date, scraped_at);
CREATE INDEX IF NOT EXISTS menu_snapshots_result_idx
	ON menu_snapshots USING GIN (result jsonb_path_ops);
`

// menuItems expands to the item array of a snapshot, or an empty array when
// the scrape carried none.
const menuItems = `CASE WHEN jsonb_typeof(s.result->'menu_items') = 'array'
	THEN s.result->'menu_items' ELSE '[]'::jsonb END`

const foodIcons = `CASE WHEN jsonb_typeof(e.item->'food'->'icons'->'food_icons') = 'array'
	THEN e.item->'food'->'icons'->'food_icons' ELSE '[]'::jsonb END`

// PostgresSnapshotStore keeps every scrape as one append-only row with the
// raw result in a JSONB column.
type PostgresSnapshotStore struct {
	DB *sql.DB
}

func NewPostgresSnapshotStore(db *sql.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{DB: db}
}

func (s *PostgresSnapshotStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, Schema)
	return err
}

func (s *PostgresSnapshotStore) FindSnapshots(ctx context.Context, query service.SnapshotQuery) ([]domain.Snapshot, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, location_slug, menu_type_slug, to_char(business_date, 'YYYY-MM-DD'), scraped_at, result
		FROM menu_snapshots
		WHERE location_slug = $1 AND menu_type_slug = $2 AND business_date = $3`)
	args := []interface{}{query.LocationSlug, query.MenuTypeSlug, query.Date}

	if query.ScrapedAtOrBefore != nil {
		args = append(args, *query.ScrapedAtOrBefore)
		fmt.Fprintf(&sb, " AND scraped_at <= $%d", len(args))
	}
	if query.ScrapedAtOrAfter != nil {
		args = append(args, *query.ScrapedAtOrAfter)
		fmt.Fprintf(&sb, " AND scraped_at >= $%d", len(args))
	}
	if query.Order == service.ScrapedDescending {
		sb.WriteString(" ORDER BY scraped_at DESC, id DESC")
	} else {
		sb.WriteString(" ORDER BY scraped_at ASC, id ASC")
	}
	if query.Limit > 0 {
		args = append(args, query.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := s.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []domain.Snapshot
	for rows.Next() {
		var snapshot domain.Snapshot
		var result []byte
		if err := rows.Scan(&snapshot.ID, &snapshot.LocationSlug, &snapshot.MenuTypeSlug, &snapshot.Date, &snapshot.ScrapedAt, &result); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(result, &snapshot.Result); err != nil {
			return nil, fmt.Errorf("decode snapshot %d: %w", snapshot.ID, err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

// ScanHashSightings visits every distinct hash in hash order, paired with
// the dish name it carried in the earliest scrape that contains it.
func (s *PostgresSnapshotStore) ScanHashSightings(ctx context.Context, fn func(domain.HashSighting) error) error {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT DISTINCT ON (e.item->>'hash') e.item->>'hash', COALESCE(e.item->'food'->>'name', '')
		FROM menu_snapshots s
		CROSS JOIN LATERAL jsonb_array_elements(`+menuItems+`) WITH ORDINALITY AS e(item, position)
		WHERE COALESCE(e.item->>'hash', '') <> ''
		ORDER BY e.item->>'hash', s.scraped_at, s.id, e.position`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sighting domain.HashSighting
		if err := rows.Scan(&sighting.Hash, &sighting.Name); err != nil {
			return err
		}
		if err := fn(sighting); err != nil {
			return err
		}
	}
	return rows.Err()
}

// LatestOccurrence finds the newest sighting of any of the hashes. Scrape
// time decides; business date, then the later snapshot and the earlier item
// position break ties.
func (s *PostgresSnapshotStore) LatestOccurrence(ctx context.Context, hashes []string) (*domain.Occurrence, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	var occurrence domain.Occurrence
	var item []byte
	err := s.DB.QueryRowContext(ctx, `
		SELECT to_char(s.business_date, 'YYYY-MM-DD'), s.scraped_at, e.item
		FROM menu_snapshots s
		CROSS JOIN LATERAL jsonb_array_elements(`+menuItems+`) WITH ORDINALITY AS e(item, position)
		WHERE e.item->>'hash' = ANY($1)
		ORDER BY s.scraped_at DESC, s.business_date DESC, s.id DESC, e.position
		LIMIT 1`, pq.Array(hashes)).
		Scan(&occurrence.Date, &occurrence.ScrapedAt, &item)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(item, &occurrence.Item); err != nil {
		return nil, fmt.Errorf("decode menu item: %w", err)
	}
	return &occurrence, nil
}

func (s *PostgresSnapshotStore) DistinctMenus(ctx context.Context) ([]domain.MenuKey, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT DISTINCT location_slug, menu_type_slug
		FROM menu_snapshots
		ORDER BY location_slug, menu_type_slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []domain.MenuKey
	for rows.Next() {
		var menu domain.MenuKey
		if err := rows.Scan(&menu.LocationSlug, &menu.MenuTypeSlug); err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, rows.Err()
}

func (s *PostgresSnapshotStore) DistinctFoodProperties(ctx context.Context) ([]domain.FoodProperty, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT DISTINCT ON (icon->>'slug') icon->>'slug', COALESCE(icon->>'name', ''), COALESCE(icon->>'help_text', '')
		FROM menu_snapshots s
		CROSS JOIN LATERAL jsonb_array_elements(`+menuItems+`) WITH ORDINALITY AS e(item, position)
		CROSS JOIN LATERAL jsonb_array_elements(`+foodIcons+`) AS icon
		WHERE COALESCE(icon->>'slug', '') <> ''
		ORDER BY icon->>'slug', s.scraped_at, s.id, e.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.FoodProperty
	for rows.Next() {
		var property domain.FoodProperty
		if err := rows.Scan(&property.Slug, &property.Name, &property.Description); err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}

func (s *PostgresSnapshotStore) AppendSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	result, err := json.Marshal(snapshot.Result)
	if err != nil {
		return fmt.Errorf("encode scrape result: %w", err)
	}
	return s.DB.QueryRowContext(ctx, `
		INSERT INTO menu_snapshots (location_slug, menu_type_slug, business_date, scraped_at, result)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, snapshot.LocationSlug, snapshot.MenuTypeSlug, snapshot.Date, snapshot.ScrapedAt, string(result)).
		Scan(&snapshot.ID)
}

var _ service.SnapshotStore = (*PostgresSnapshotStore)(nil)
