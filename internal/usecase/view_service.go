package usecase

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/palette"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/logging"
)

const defaultViewCacheSize = 128

type DatasetReader interface {
	Dataset(ctx context.Context) Dataset
	Fixtures(ctx context.Context) ([]fixture.Fixture, error)
}

// ViewInput carries the widget values of every page. Fields that do not
// apply to the rendered page are ignored.
type ViewInput struct {
	Palette   string   `json:"palette,omitempty" validate:"omitempty,max=32"`
	Rows      int      `json:"rows,omitempty" validate:"omitempty,min=5,max=1000"`
	SortBy    string   `json:"sortBy,omitempty" validate:"omitempty,max=32"`
	Players   []string `json:"players,omitempty" validate:"omitempty,max=11,dive,required,max=64"`
	ChartKind string   `json:"chartKind,omitempty" validate:"omitempty,oneof=bar radar"`
	Query     string   `json:"query,omitempty" validate:"omitempty,max=64"`
	Teams     []string `json:"teams,omitempty" validate:"omitempty,max=20,dive,required,max=64"`
	Metrics   []string `json:"metrics,omitempty" validate:"omitempty,dive,oneof=total_points goals_scored assists clean_sheets"`
	Team      string   `json:"team,omitempty" validate:"omitempty,max=64"`
	Position  string   `json:"position,omitempty" validate:"omitempty,oneof=Goalkeeper Defender Midfielder Forward"`
}

type SessionRequest struct {
	State    view.State `json:"state"`
	Navigate string     `json:"navigate,omitempty"`
	Input    ViewInput  `json:"input"`
}

type SessionResult struct {
	State view.State `json:"state"`
	View  view.View  `json:"view"`
}

type TeamColors struct {
	Palette string          `json:"palette"`
	Version uint64          `json:"version"`
	Colors  palette.Mapping `json:"colors"`
	Order   []string        `json:"order"`
	Notices []view.Notice   `json:"notices,omitempty"`
}

// renderContext is everything a page renderer may read.
type renderContext struct {
	tables   Tables
	colors   palette.Mapping
	palette  palette.Palette
	catalog  *palette.Catalog
	fixtures func(ctx context.Context) ([]fixture.Fixture, error)
}

type pageRenderer func(ctx context.Context, rc renderContext, in ViewInput) (view.View, error)

type ViewServiceConfig struct {
	CacheSize      int
	DefaultPalette string
}

type ViewService struct {
	datasets       DatasetReader
	catalog        *palette.Catalog
	defaultPalette string
	mappings       *lru.Cache
	renderers      map[view.Page]pageRenderer
	logger         *logging.Logger
}

type mappingKey struct {
	version uint64
	palette string
}

func NewViewService(datasets DatasetReader, catalog *palette.Catalog, cfg ViewServiceConfig, logger *logging.Logger) (*ViewService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if catalog == nil {
		builtin, err := palette.Builtin()
		if err != nil {
			return nil, fmt.Errorf("load palette catalog: %w", err)
		}
		catalog = builtin
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultViewCacheSize
	}
	defaultPalette := catalog.DefaultName()
	if name := strings.TrimSpace(cfg.DefaultPalette); name != "" {
		p, ok := catalog.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown default palette %q", ErrInvalidInput, name)
		}
		defaultPalette = p.Name
	}
	mappings, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create mapping cache: %w", err)
	}

	return &ViewService{
		datasets:       datasets,
		catalog:        catalog,
		defaultPalette: defaultPalette,
		mappings:       mappings,
		renderers: map[view.Page]pageRenderer{
			view.PageHome:           renderHome,
			view.PageComparePlayers: renderComparePlayers,
			view.PageSearchPlayer:   renderSearchPlayer,
			view.PageCompareTeams:   renderCompareTeams,
			view.PageSearchTeam:     renderSearchTeam,
			view.PageFixtures:       renderFixtures,
			view.PageBestPlayers:    renderBestPlayers,
		},
		logger: logger,
	}, nil
}

func (s *ViewService) Palettes() []palette.Palette {
	return s.catalog.All()
}

func (s *ViewService) DefaultPalette() string {
	return s.defaultPalette
}

// resolvePalette falls back to the configured default for unknown names.
func (s *ViewService) resolvePalette(name string) palette.Palette {
	if p, ok := s.catalog.Get(name); ok {
		return p
	}
	return s.catalog.Resolve(s.defaultPalette)
}

// Render draws one page from the current dataset.
func (s *ViewService) Render(ctx context.Context, page view.Page, in ViewInput) (view.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ViewService.Render", attribute.String("fpl.page", page.Slug()))
	defer span.End()

	renderer, ok := s.renderers[page]
	if !ok {
		return view.View{}, fmt.Errorf("%w: unknown page %d", ErrInvalidInput, int(page))
	}

	dataset := s.datasets.Dataset(ctx)
	selected := s.resolvePalette(in.Palette)
	rc := renderContext{
		tables:   dataset.Snapshot.Tables,
		colors:   s.mapping(dataset.Snapshot, selected),
		palette:  selected,
		catalog:  s.catalog,
		fixtures: s.datasets.Fixtures,
	}

	out, err := renderer(ctx, rc, in)
	if err != nil {
		return view.View{}, err
	}
	out.Notices = append(append([]view.Notice{}, dataset.Notices...), out.Notices...)
	return out, nil
}

// RenderSession applies navigation and widget input to state and renders the
// resulting page. The incoming state is never modified.
func (s *ViewService) RenderSession(ctx context.Context, req SessionRequest) (SessionResult, error) {
	state := req.State
	if !state.Page.Valid() {
		return SessionResult{}, fmt.Errorf("%w: invalid page in state", ErrInvalidInput)
	}
	if strings.TrimSpace(state.Palette) == "" {
		state = view.WithPalette(state, s.defaultPalette)
	}

	if req.Navigate != "" {
		page, err := view.ParsePage(req.Navigate)
		if err != nil {
			return SessionResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		state = view.Navigate(state, page)
	}
	if req.Input.Palette != "" {
		state = view.WithPalette(state, s.resolvePalette(req.Input.Palette).Name)
	}

	in := req.Input
	in.Palette = state.Palette
	if state.Page == view.PageComparePlayers {
		if len(in.Players) > 0 {
			state = view.WithComparison(state, in.Players)
		} else if len(state.Comparison) > 0 {
			in.Players = append([]string(nil), state.Comparison...)
		}
	}

	rendered, err := s.Render(ctx, state.Page, in)
	if err != nil {
		return SessionResult{}, err
	}
	return SessionResult{State: state, View: rendered}, nil
}

// TeamColors returns the team to colour mapping for the current snapshot.
func (s *ViewService) TeamColors(ctx context.Context, paletteName string) TeamColors {
	dataset := s.datasets.Dataset(ctx)
	selected := s.resolvePalette(paletteName)
	return TeamColors{
		Palette: selected.Name,
		Version: dataset.Snapshot.Version,
		Colors:  s.mapping(dataset.Snapshot, selected),
		Order:   teamOrder(dataset.Snapshot.Tables),
		Notices: dataset.Notices,
	}
}

func (s *ViewService) mapping(snapshot *Snapshot, selected palette.Palette) palette.Mapping {
	key := mappingKey{version: snapshot.Version, palette: selected.Name}
	if cached, ok := s.mappings.Get(key); ok {
		if mapping, ok := cached.(palette.Mapping); ok {
			return mapping
		}
	}
	mapping := palette.Assign(teamOrder(snapshot.Tables), selected.Colors)
	s.mappings.Add(key, mapping)
	return mapping
}

// teamOrder lists team names in the order they first appear among players.
func teamOrder(tables Tables) []string {
	names := make([]string, 0, len(tables.Players))
	for _, p := range tables.Players {
		names = append(names, p.Team)
	}
	return palette.FirstSeen(names)
}
