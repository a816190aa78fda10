package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/player"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/stat"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

var comparisonColors = []string{"#ef2213", "#20ef13"}

var comparePlayerMetrics = []player.Metric{
	player.MetricTotalPoints, player.MetricGoalsScored, player.MetricAssists,
	player.MetricCleanSheets, player.MetricHours, player.MetricYellowCards,
	player.MetricRedCards, player.MetricOwnership, player.MetricPrice,
}

func distinctSecondNames(players []player.Player) []string {
	return uniqueStrings(secondNames(players))
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

// findBySecondName returns the first row with that second name.
func findBySecondName(players []player.Player, name string) (player.Player, bool) {
	for _, p := range players {
		if p.SecondName == name {
			return p, true
		}
	}
	return player.Player{}, false
}

func renderComparePlayers(_ context.Context, rc renderContext, in ViewInput) (view.View, error) {
	out := view.New(view.PageComparePlayers)
	options := distinctSecondNames(rc.tables.Players)
	out.Options["players"] = options
	out.Options["chartKind"] = []string{string(view.ChartBar), string(view.ChartRadar)}

	names := make([]string, 0, len(in.Players))
	for _, name := range in.Players {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	if len(names) == 0 {
		if len(rc.tables.Players) == 0 {
			out.Notify(view.NoticeInfo, "No players available to compare.")
			return out, nil
		}
		names = head(options, 2)
	}
	if len(names) < 2 {
		return view.View{}, fmt.Errorf("%w: select at least two players to compare", ErrInvalidInput)
	}

	selected := make([]player.Player, 0, len(names))
	for _, name := range names {
		p, ok := findBySecondName(rc.tables.Players, name)
		if !ok {
			return view.View{}, fmt.Errorf("%w: player %q%s", ErrNotFound, name, didYouMean(name, options))
		}
		selected = append(selected, p)
	}

	kind := view.ChartGroupedBar
	if in.ChartKind == string(view.ChartRadar) {
		kind = view.ChartRadar
	}

	categories := make([]string, 0, len(comparePlayerMetrics))
	for _, metric := range comparePlayerMetrics {
		categories = append(categories, string(metric))
	}

	series := make([]view.Series, 0, len(selected))
	for i, p := range selected {
		values := make([]stat.Value, 0, len(comparePlayerMetrics))
		for _, metric := range comparePlayerMetrics {
			value, _ := p.Value(metric)
			values = append(values, value)
		}
		series = append(series, view.Series{
			Name:   names[i],
			Color:  comparisonColors[i%len(comparisonColors)],
			Values: values,
		})
	}

	out.Charts = append(out.Charts, view.Chart{
		Kind:       kind,
		Title:      "Comparison between " + joinNames(names),
		XLabel:     "Metric",
		YLabel:     "Value",
		Categories: categories,
		Series:     series,
		Height:     chartHeight,
		Template:   view.DarkTemplate,
	})
	out.Tables = append(out.Tables, comparisonTable(categories, series))
	return out, nil
}

// comparisonTable lays out one row per metric and one column per series.
func comparisonTable(categories []string, series []view.Series) view.Table {
	columns := make([]string, 0, len(series)+1)
	columns = append(columns, "Metric")
	for _, s := range series {
		columns = append(columns, s.Name)
	}

	rows := make([][]any, 0, len(categories))
	for i, category := range categories {
		row := make([]any, 0, len(columns))
		row = append(row, category)
		for _, s := range series {
			row = append(row, s.Values[i])
		}
		rows = append(rows, row)
	}
	return view.Table{Columns: columns, Rows: rows}
}
