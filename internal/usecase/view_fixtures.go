package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/stat"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

const allTeams = "All"

var fixtureColumns = []string{"Date", "Time", "Home", "Away", "Home Score", "Away Score", "Status"}

func scoreCell(score *int) any {
	if score == nil {
		return fixture.ScorePlaceholder
	}
	return stat.OfInt(*score)
}

func fixtureCells(row fixture.Row) []any {
	return []any{
		row.Date, row.Time, row.Home, row.Away,
		scoreCell(row.HomeScore), scoreCell(row.AwayScore), string(row.Status),
	}
}

func renderFixtures(ctx context.Context, rc renderContext, in ViewInput) (view.View, error) {
	out := view.New(view.PageFixtures)

	names := uniqueStrings(rc.tables.TeamNames())
	slices.Sort(names)
	out.Options["team"] = append([]string{allTeams}, names...)

	selected := strings.TrimSpace(in.Team)
	if selected == "" {
		selected = allTeams
	}
	if selected != allTeams && !slices.Contains(names, selected) {
		return view.View{}, fmt.Errorf("%w: unknown team %q%s", ErrInvalidInput, selected, didYouMean(selected, names))
	}

	table := view.Table{Title: "Fixtures Table", Columns: fixtureColumns, Rows: [][]any{}}

	items, err := rc.fixtures(ctx)
	if err != nil {
		out.Notify(view.NoticeError, "Error fetching fixtures: "+err.Error())
		out.Tables = append(out.Tables, table)
		return out, nil
	}

	nameByID := rc.tables.TeamNameByID()
	unresolved := 0
	for _, item := range items {
		row := fixture.Resolve(item, nameByID)
		if row.Home == "" || row.Away == "" {
			unresolved++
		}
		if selected != allTeams && !row.Involves(selected) {
			continue
		}
		table.Rows = append(table.Rows, fixtureCells(row))
	}
	out.Tables = append(out.Tables, table)

	if unresolved > 0 {
		out.Notify(view.NoticeWarning, fmt.Sprintf("%d fixtures reference teams missing from the player data.", unresolved))
	}
	if table.Empty() {
		out.Notify(view.NoticeInfo, "No fixtures found.")
	}
	return out, nil
}
