package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/player"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/team"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

// containsFold is a literal, case-insensitive substring match.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func renderSearchPlayer(_ context.Context, rc renderContext, in ViewInput) (view.View, error) {
	out := view.New(view.PageSearchPlayer)
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return out, nil
	}

	matches := make([]player.Player, 0)
	for _, p := range rc.tables.Players {
		if containsFold(p.SecondName, query) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		out.Notify(view.NoticeInfo, "No players found.")
		if suggestions := fuzzySuggestions(query, distinctSecondNames(rc.tables.Players)); len(suggestions) > 0 {
			out.Options["suggestions"] = suggestions
		}
		return out, nil
	}

	out.Tables = append(out.Tables, playerTable("", playerSearchColumns, matches))
	return out, nil
}

func renderSearchTeam(_ context.Context, rc renderContext, in ViewInput) (view.View, error) {
	out := view.New(view.PageSearchTeam)
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return out, nil
	}

	matches := make([]team.Team, 0)
	for _, t := range rc.tables.Teams {
		if containsFold(t.Name, query) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		out.Notify(view.NoticeInfo, "No teams found.")
		if suggestions := fuzzySuggestions(query, rc.tables.TeamNames()); len(suggestions) > 0 {
			out.Options["suggestions"] = suggestions
		}
		return out, nil
	}

	out.Tables = append(out.Tables, teamTable("", matches))
	return out, nil
}
