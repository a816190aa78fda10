package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/player"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/stat"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

const (
	homeTopByPoints    = 50
	homeTopByOwnership = 20
	homeDefaultRows    = 10
	homeMinRows        = 5
	chartHeight        = 500

	ownershipColor = "#2ca02c"
	bonusColor     = "#ff7f0e"
	priceColor     = "#1f77b4"
)

type sortOption struct {
	label  string
	metric player.Metric
}

var homeSortOptions = []sortOption{
	{label: "Hours", metric: player.MetricHours},
	{label: "Total Points", metric: player.MetricTotalPoints},
	{label: "Goals Scored", metric: player.MetricGoalsScored},
	{label: "Assists", metric: player.MetricAssists},
	{label: "Clean Sheets", metric: player.MetricCleanSheets},
	{label: "Ownership", metric: player.MetricOwnership},
	{label: "Price", metric: player.MetricPrice},
}

func homeSortMetric(label string) (player.Metric, error) {
	if label == "" {
		return homeSortOptions[0].metric, nil
	}
	for _, option := range homeSortOptions {
		if option.label == label || string(option.metric) == label {
			return option.metric, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, label)
}

// sortedBy returns a copy of players ordered descending by metric, missing last.
func sortedBy(players []player.Player, metric player.Metric) []player.Player {
	out := slices.Clone(players)
	slices.SortStableFunc(out, func(a, b player.Player) int {
		left, _ := a.Value(metric)
		right, _ := b.Value(metric)
		return stat.CompareDesc(left, right)
	})
	return out
}

func head[T any](items []T, n int) []T {
	if n < 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

func renderHome(_ context.Context, rc renderContext, in ViewInput) (view.View, error) {
	out := view.New(view.PageHome)
	out.Options["palette"] = rc.catalog.Names()
	sortLabels := make([]string, 0, len(homeSortOptions))
	for _, option := range homeSortOptions {
		sortLabels = append(sortLabels, option.label)
	}
	out.Options["sortBy"] = sortLabels

	metric, err := homeSortMetric(in.SortBy)
	if err != nil {
		return view.View{}, err
	}

	players := rc.tables.Players
	rows := in.Rows
	switch {
	case rows == 0:
		rows = homeDefaultRows
	case rows < homeMinRows || rows > max(len(players), homeMinRows):
		return view.View{}, fmt.Errorf("%w: rows must be between %d and %d", ErrInvalidInput, homeMinRows, max(len(players), homeMinRows))
	}

	topPoints := head(sortedBy(players, player.MetricTotalPoints), homeTopByPoints)
	out.Charts = append(out.Charts, view.Chart{
		Kind:       view.ChartBar,
		Title:      "Top Players by Total Points",
		XLabel:     "Player",
		YLabel:     "Total Points",
		Categories: secondNames(topPoints),
		Series: []view.Series{
			teamColoredSeries("Total Points", topPoints, metricValues(topPoints, player.MetricTotalPoints), rc.colors),
		},
		Height:   chartHeight,
		Template: view.DarkTemplate,
	})

	detail := head(sortedBy(players, metric), rows)
	out.Tables = append(out.Tables, playerTable("Player Detailed Statistics", playerDetailColumns, detail))

	topOwned := head(sortedBy(players, player.MetricOwnership), homeTopByOwnership)
	out.Charts = append(out.Charts, view.Chart{
		Kind:       view.ChartGroupedBar,
		Title:      "Top Players by Ownership, Bonus Points, and Price",
		XLabel:     "Player",
		YLabel:     "Value",
		Categories: secondNames(topOwned),
		Series: []view.Series{
			{Name: "Ownership", Color: ownershipColor, Values: metricValues(topOwned, player.MetricOwnership)},
			{Name: "Bonus Points", Color: bonusColor, Values: metricValues(topOwned, player.MetricBonus)},
			{Name: "Price", Color: priceColor, Values: metricValues(topOwned, player.MetricPrice)},
		},
		Template: view.DarkTemplate,
	})

	if len(players) == 0 {
		out.Notify(view.NoticeInfo, "No player data available.")
	}
	return out, nil
}
