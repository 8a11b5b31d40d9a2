package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"overcooked-menu/menu-svc/internal/domain"

	"golang.org/x/sync/errgroup"
)

const monthlyViewConcurrency = 4

type MenuService struct {
	selector  *SnapshotSelector
	assembler *MenuAssembler
	resolver  LatestVersionResolver
	catalog   *CatalogRegistry
	qrEncoder QREncoder
	publicURL string
}

func NewMenuService(
	selector *SnapshotSelector,
	assembler *MenuAssembler,
	resolver LatestVersionResolver,
	catalog *CatalogRegistry,
	qrEncoder QREncoder,
	publicURL string,
) *MenuService {
	return &MenuService{
		selector:  selector,
		assembler: assembler,
		resolver:  resolver,
		catalog:   catalog,
		qrEncoder: qrEncoder,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// GetMenu returns the menu served at a location on a business date, or nil
// when nothing has been published for it.
func (s *MenuService) GetMenu(ctx context.Context, date, locationSlug, menuTypeSlug string) (*domain.Menu, error) {
	snapshot, err := s.selector.Select(ctx, date, locationSlug, menuTypeSlug)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}
	return s.assembler.Assemble(ctx, snapshot)
}

func (s *MenuService) GetLatestVersion(ctx context.Context, hash string) (*domain.VersionPointer, error) {
	return s.resolver.ResolveLatest(ctx, hash)
}

// GetMonthlyView reports, for every day of the month, whether a menu with at
// least one item exists.
func (s *MenuService) GetMonthlyView(ctx context.Context, year, month int, locationSlug, menuTypeSlug string) ([]domain.MonthlyViewDay, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	view := make([]domain.MonthlyViewDay, days)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(monthlyViewConcurrency)
	for i := range view {
		date := first.AddDate(0, 0, i).Format(domain.BusinessDateLayout)
		view[i].Day = date
		g.Go(func() error {
			menu, err := s.GetMenu(gctx, date, locationSlug, menuTypeSlug)
			if err != nil {
				return err
			}
			view[i].HasMenuItems = menu.HasMenuItems()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *MenuService) Locations() []domain.Location {
	return s.catalog.Locations()
}

func (s *MenuService) FoodProperties() []domain.FoodProperty {
	return s.catalog.FoodProperties()
}

// ItemQRCode renders a QR code pointing at the dish page for hash.
func (s *MenuService) ItemQRCode(ctx context.Context, hash string) ([]byte, error) {
	latest, err := s.resolver.ResolveLatest(ctx, hash)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return s.qrEncoder.Encode(s.DishLink(hash))
}

func (s *MenuService) DishLink(hash string) string {
	return fmt.Sprintf("%s/dish?hash=%s", s.publicURL, url.QueryEscape(hash))
}
