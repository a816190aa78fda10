package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/player"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/stat"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

var teamMetricOptions = []sortOption{
	{label: "Total Points", metric: player.MetricTotalPoints},
	{label: "Goals Scored", metric: player.MetricGoalsScored},
	{label: "Assists", metric: player.MetricAssists},
	{label: "Clean Sheets", metric: player.MetricCleanSheets},
}

func selectedTeamMetrics(requested []string) ([]sortOption, error) {
	if len(requested) == 0 {
		return teamMetricOptions, nil
	}
	out := make([]sortOption, 0, len(requested))
	for _, option := range teamMetricOptions {
		for _, name := range requested {
			if name == string(option.metric) || name == option.label {
				out = append(out, option)
				break
			}
		}
	}
	if len(out) != len(uniqueStrings(requested)) {
		return nil, fmt.Errorf("%w: unknown team metric in %v", ErrInvalidInput, requested)
	}
	return out, nil
}

// teamTotals sums metric over every player of teamName, skipping missing values.
func teamTotals(players []player.Player, teamName string, metric player.Metric) stat.Value {
	values := make([]stat.Value, 0, 32)
	for _, p := range players {
		if p.Team != teamName {
			continue
		}
		value, _ := p.Value(metric)
		values = append(values, value)
	}
	return stat.Sum(values...)
}

func renderCompareTeams(_ context.Context, rc renderContext, in ViewInput) (view.View, error) {
	out := view.New(view.PageCompareTeams)
	options := uniqueStrings(rc.tables.TeamNames())
	out.Options["teams"] = options
	metricLabels := make([]string, 0, len(teamMetricOptions))
	for _, option := range teamMetricOptions {
		metricLabels = append(metricLabels, string(option.metric))
	}
	out.Options["metrics"] = metricLabels

	metrics, err := selectedTeamMetrics(in.Metrics)
	if err != nil {
		return view.View{}, err
	}

	names := make([]string, 0, len(in.Teams))
	for _, name := range in.Teams {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	if len(names) == 0 {
		if len(options) == 0 {
			out.Notify(view.NoticeInfo, "No teams available to compare.")
			return out, nil
		}
		names = head(options, 2)
	}
	if len(names) < 2 {
		return view.View{}, fmt.Errorf("%w: select at least two teams to compare", ErrInvalidInput)
	}

	known := make(map[string]struct{}, len(options))
	for _, name := range options {
		known[name] = struct{}{}
	}

	categories := make([]string, 0, len(metrics))
	for _, option := range metrics {
		categories = append(categories, option.label)
	}

	series := make([]view.Series, 0, len(names))
	for i, name := range names {
		if _, ok := known[name]; !ok {
			return view.View{}, fmt.Errorf("%w: team %q%s", ErrNotFound, name, didYouMean(name, options))
		}
		values := make([]stat.Value, 0, len(metrics))
		for _, option := range metrics {
			values = append(values, teamTotals(rc.tables.Players, name, option.metric))
		}
		series = append(series, view.Series{
			Name:   name,
			Color:  comparisonColors[i%len(comparisonColors)],
			Values: values,
		})
	}

	out.Charts = append(out.Charts, view.Chart{
		Kind:       view.ChartGroupedBar,
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
