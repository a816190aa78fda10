package player

import "github.com/riskibarqy/fpl-dashboard/internal/domain/stat"

// Metric names a numeric column of the players table.
type Metric string

const (
	MetricTotalPoints           Metric = "total_points"
	MetricGoalsScored           Metric = "goals_scored"
	MetricAssists               Metric = "assists"
	MetricCleanSheets           Metric = "clean_sheets"
	MetricHours                 Metric = "Hours"
	MetricYellowCards           Metric = "yellow_cards"
	MetricRedCards              Metric = "red_cards"
	MetricForm                  Metric = "form"
	MetricBonus                 Metric = "bonus"
	MetricEventPoints           Metric = "event_points"
	MetricOwnership             Metric = "Ownership"
	MetricPrice                 Metric = "Price"
	MetricInfluence             Metric = "influence"
	MetricCreativity            Metric = "creativity"
	MetricThreat                Metric = "threat"
	MetricExpectedGoals         Metric = "expected_goals"
	MetricExpectedAssists       Metric = "expected_assists"
	MetricExpectedGoalsConceded Metric = "expected_goals_conceded"
	MetricSaves                 Metric = "saves"
)

var metricAccessors = map[Metric]func(Player) stat.Value{
	MetricTotalPoints:           func(p Player) stat.Value { return p.TotalPoints },
	MetricGoalsScored:           func(p Player) stat.Value { return p.GoalsScored },
	MetricAssists:               func(p Player) stat.Value { return p.Assists },
	MetricCleanSheets:           func(p Player) stat.Value { return p.CleanSheets },
	MetricHours:                 func(p Player) stat.Value { return p.Hours },
	MetricYellowCards:           func(p Player) stat.Value { return p.YellowCards },
	MetricRedCards:              func(p Player) stat.Value { return p.RedCards },
	MetricForm:                  func(p Player) stat.Value { return p.Form },
	MetricBonus:                 func(p Player) stat.Value { return p.Bonus },
	MetricEventPoints:           func(p Player) stat.Value { return p.EventPoints },
	MetricOwnership:             func(p Player) stat.Value { return p.Ownership },
	MetricPrice:                 func(p Player) stat.Value { return p.Price },
	MetricInfluence:             func(p Player) stat.Value { return p.Influence },
	MetricCreativity:            func(p Player) stat.Value { return p.Creativity },
	MetricThreat:                func(p Player) stat.Value { return p.Threat },
	MetricExpectedGoals:         func(p Player) stat.Value { return p.ExpectedGoals },
	MetricExpectedAssists:       func(p Player) stat.Value { return p.ExpectedAssists },
	MetricExpectedGoalsConceded: func(p Player) stat.Value { return p.ExpectedGoalsConceded },
	MetricSaves:                 func(p Player) stat.Value { return p.Saves },
}

// Value returns the metric for p. The bool is false for unknown metric names.
func (p Player) Value(m Metric) (stat.Value, bool) {
	accessor, ok := metricAccessors[m]
	if !ok {
		return stat.Value{}, false
	}
	return accessor(p), true
}

func IsKnownMetric(m Metric) bool {
	_, ok := metricAccessors[m]
	return ok
}

// MetricsByPosition lists the metrics summed into a best-players score.
var MetricsByPosition = map[Position][]Metric{
	PositionGoalkeeper: {MetricSaves, MetricCleanSheets},
	PositionDefender:   {MetricExpectedGoals, MetricExpectedAssists, MetricCleanSheets, MetricInfluence, MetricCreativity, MetricThreat},
	PositionMidfielder: {MetricExpectedGoals, MetricExpectedAssists, MetricInfluence, MetricCreativity, MetricThreat},
	PositionForward:    {MetricExpectedGoals, MetricExpectedAssists, MetricInfluence, MetricCreativity, MetricThreat},
}
