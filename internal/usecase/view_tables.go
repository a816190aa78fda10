package usecase

import (
	"github.com/riskibarqy/fpl-dashboard/internal/domain/palette"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/player"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/stat"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/team"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

const (
	columnFirstName  = "first_name"
	columnSecondName = "second_name"
	columnTeam       = "team"
	columnPosition   = "position"
)

var playerDetailColumns = []string{
	columnFirstName, columnSecondName, columnTeam,
	string(player.MetricTotalPoints), string(player.MetricGoalsScored), string(player.MetricAssists),
	string(player.MetricCleanSheets), string(player.MetricHours), string(player.MetricYellowCards),
	string(player.MetricRedCards), string(player.MetricForm), string(player.MetricBonus),
	string(player.MetricEventPoints), string(player.MetricOwnership), string(player.MetricPrice),
}

var playerSearchColumns = append(append([]string{}, playerDetailColumns...),
	string(player.MetricInfluence), string(player.MetricCreativity), string(player.MetricThreat),
	string(player.MetricExpectedGoals), string(player.MetricExpectedAssists),
	string(player.MetricExpectedGoalsConceded), string(player.MetricSaves), columnPosition,
)

func playerCell(p player.Player, column string) any {
	switch column {
	case columnFirstName:
		return p.FirstName
	case columnSecondName:
		return p.SecondName
	case columnTeam:
		return p.Team
	case columnPosition:
		if p.Position == "" {
			return nil
		}
		return string(p.Position)
	}
	if value, ok := p.Value(player.Metric(column)); ok {
		return value
	}
	return nil
}

func playerTable(title string, columns []string, players []player.Player) view.Table {
	rows := make([][]any, 0, len(players))
	for _, p := range players {
		row := make([]any, 0, len(columns))
		for _, column := range columns {
			row = append(row, playerCell(p, column))
		}
		rows = append(rows, row)
	}
	return view.Table{Title: title, Columns: append([]string(nil), columns...), Rows: rows}
}

func teamTable(title string, teams []team.Team) view.Table {
	rows := make([][]any, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, []any{stat.Of(float64(t.ID)), t.Name, t.ShortName})
	}
	return view.Table{Title: title, Columns: []string{"id", "name", "short_name"}, Rows: rows}
}

// secondNames lists the category axis of a player chart.
func secondNames(players []player.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.SecondName)
	}
	return out
}

func metricValues(players []player.Player, metric player.Metric) []stat.Value {
	out := make([]stat.Value, 0, len(players))
	for _, p := range players {
		value, _ := p.Value(metric)
		out = append(out, value)
	}
	return out
}

// teamColoredSeries is a single bar trace whose bars take their team colour.
func teamColoredSeries(name string, players []player.Player, values []stat.Value, colors palette.Mapping) view.Series {
	pointColors := make([]string, 0, len(players))
	groups := make([]string, 0, len(players))
	for _, p := range players {
		pointColors = append(pointColors, colors.ColorOf(p.Team, ""))
		groups = append(groups, p.Team)
	}
	return view.Series{Name: name, Values: values, Colors: pointColors, Groups: groups}
}

