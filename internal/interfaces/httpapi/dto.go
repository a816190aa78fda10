package httpapi

import (
	"strings"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/palette"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
	"github.com/riskibarqy/fpl-dashboard/internal/usecase"
)

type pageDTO struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

type paletteDTO struct {
	Name      string   `json:"name"`
	Colors    []string `json:"colors"`
	IsDefault bool     `json:"isDefault"`
}

type paletteListDTO struct {
	Default  string       `json:"default"`
	Palettes []paletteDTO `json:"palettes"`
}

type sessionRenderRequest struct {
	State    view.State       `json:"state"`
	Navigate string           `json:"navigate,omitempty"`
	Input    viewInputPayload `json:"input"`
}

// viewInputPayload mirrors usecase.ViewInput so that request decoding stays
// independent of the service struct.
type viewInputPayload struct {
	Palette   string   `json:"palette,omitempty"`
	Rows      int      `json:"rows,omitempty"`
	SortBy    string   `json:"sortBy,omitempty"`
	Players   []string `json:"players,omitempty"`
	ChartKind string   `json:"chartKind,omitempty"`
	Query     string   `json:"query,omitempty"`
	Teams     []string `json:"teams,omitempty"`
	Metrics   []string `json:"metrics,omitempty"`
	Team      string   `json:"team,omitempty"`
	Position  string   `json:"position,omitempty"`
}

func pagesToDTO(pages []view.Page) []pageDTO {
	out := make([]pageDTO, 0, len(pages))
	for _, page := range pages {
		out = append(out, pageDTO{Slug: page.Slug(), Label: page.String()})
	}
	return out
}

func palettesToDTO(items []palette.Palette, defaultName string) paletteListDTO {
	out := paletteListDTO{Default: defaultName, Palettes: make([]paletteDTO, 0, len(items))}
	for _, item := range items {
		out.Palettes = append(out.Palettes, paletteDTO{
			Name:      item.Name,
			Colors:    append([]string(nil), item.Colors...),
			IsDefault: item.Name == defaultName,
		})
	}
	return out
}

func (p viewInputPayload) toInput() usecase.ViewInput {
	return usecase.ViewInput{
		Palette:   strings.TrimSpace(p.Palette),
		Rows:      p.Rows,
		SortBy:    strings.TrimSpace(p.SortBy),
		Players:   trimAll(p.Players),
		ChartKind: strings.TrimSpace(p.ChartKind),
		Query:     strings.TrimSpace(p.Query),
		Teams:     trimAll(p.Teams),
		Metrics:   trimAll(p.Metrics),
		Team:      strings.TrimSpace(p.Team),
		Position:  strings.TrimSpace(p.Position),
	}
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
