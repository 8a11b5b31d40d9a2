package service

import (
	"context"
	"log/slog"
	"sort"

	"overcooked-menu/menu-svc/internal/domain"

	"golang.org/x/sync/errgroup"
)

const (
	// FallbackSectionName names sections that arrive without display options.
	FallbackSectionName = "None"

	DefaultResolveConcurrency = 8
)

// MenuAssembler turns one snapshot into a sectioned menu and annotates every
// item with the latest version of its lineage.
type MenuAssembler struct {
	resolver    LatestVersionResolver
	concurrency int
	logger      *slog.Logger
}

func NewMenuAssembler(resolver LatestVersionResolver, concurrency int, logger *slog.Logger) *MenuAssembler {
	if concurrency <= 0 {
		concurrency = DefaultResolveConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MenuAssembler{resolver: resolver, concurrency: concurrency, logger: logger}
}

type rawSection struct {
	id    string
	info  domain.SectionInfo
	items []domain.RawItem
}

// Assemble returns nil when the snapshot has no section metadata or no item
// list. Items without a food description are skipped.
func (a *MenuAssembler) Assemble(ctx context.Context, snapshot *domain.Snapshot) (*domain.Menu, error) {
	if snapshot == nil {
		return nil, nil
	}
	result := snapshot.Result
	if result.MenuInfo == nil || result.MenuItems == nil {
		return nil, nil
	}

	date := result.Date
	if date == "" {
		date = snapshot.Date
	}

	sections := make([]*rawSection, 0, len(result.MenuInfo))
	byID := make(map[string]*rawSection, len(result.MenuInfo))
	for id, info := range result.MenuInfo {
		section := &rawSection{id: id, info: info}
		sections = append(sections, section)
		byID[id] = section
	}
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].info.Position != sections[j].info.Position {
			return sections[i].info.Position < sections[j].info.Position
		}
		return sections[i].id < sections[j].id
	})

	for _, item := range result.MenuItems {
		if section, ok := byID[item.MenuID.String()]; ok {
			section.items = append(section.items, item)
		}
	}

	menu := &domain.Menu{Date: date, Sections: make([]domain.Section, 0, len(sections))}
	dropped := 0
	for _, raw := range sections {
		sort.SliceStable(raw.items, func(i, j int) bool { return raw.items[i].Position < raw.items[j].Position })

		section := domain.Section{Name: sectionName(raw.info), MenuItems: make([]domain.DatedMenuItem, 0, len(raw.items))}
		for _, item := range raw.items {
			menuItem, ok := domain.Fingerprint(item)
			if !ok {
				dropped++
				continue
			}
			section.MenuItems = append(section.MenuItems, domain.DatedMenuItem{MenuItem: menuItem, Date: date})
		}
		menu.Sections = append(menu.Sections, section)
	}
	if dropped > 0 {
		a.logger.Debug("dropped items without food description",
			"location", snapshot.LocationSlug, "menu_type", snapshot.MenuTypeSlug, "date", date, "dropped", dropped)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for si := range menu.Sections {
		for ii := range menu.Sections[si].MenuItems {
			entry := &menu.Sections[si].MenuItems[ii]
			g.Go(func() error {
				latest, err := a.resolver.ResolveLatest(gctx, entry.MenuItem.Hash)
				if err != nil {
					return err
				}
				entry.LatestVersion = latest
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return menu, nil
}

func sectionName(info domain.SectionInfo) string {
	if info.SectionOptions == nil || !info.SectionOptions.DisplayName.Valid() {
		return FallbackSectionName
	}
	return info.SectionOptions.DisplayName.String()
}
