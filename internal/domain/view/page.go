package view

import (
	"fmt"
	"strings"
)

// Page is one of the mutually exclusive dashboard views.
type Page int

const (
	PageHome Page = iota
	PageComparePlayers
	PageSearchPlayer
	PageCompareTeams
	PageSearchTeam
	PageFixtures
	PageBestPlayers
)

type pageInfo struct {
	label string
	slug  string
}

var pages = [...]pageInfo{
	PageHome:           {label: "Home", slug: "home"},
	PageComparePlayers: {label: "Compare Players", slug: "compare-players"},
	PageSearchPlayer:   {label: "Search for a Player", slug: "search-player"},
	PageCompareTeams:   {label: "Compare Teams", slug: "compare-teams"},
	PageSearchTeam:     {label: "Search for a Team", slug: "search-team"},
	PageFixtures:       {label: "Fixtures", slug: "fixtures"},
	PageBestPlayers:    {label: "Best Players", slug: "best-players"},
}

// AllPages returns pages in navigation order.
func AllPages() []Page {
	out := make([]Page, 0, len(pages))
	for i := range pages {
		out = append(out, Page(i))
	}
	return out
}

func (p Page) Valid() bool {
	return p >= 0 && int(p) < len(pages)
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pages[p].label
}

func (p Page) Slug() string {
	if !p.Valid() {
		return ""
	}
	return pages[p].slug
}

// ParsePage accepts a label ("Search for a Player") or a slug ("search-player"), case-insensitively.
func ParsePage(raw string) (Page, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return PageHome, nil
	}
	for i, info := range pages {
		if value == info.slug || value == strings.ToLower(info.label) {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", raw)
}

func (p Page) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid page %d", int(p))
	}
	return []byte(p.Slug()), nil
}

func (p *Page) UnmarshalText(text []byte) error {
	parsed, err := ParsePage(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
