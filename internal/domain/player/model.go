package player

import "github.com/riskibarqy/fpl-dashboard/internal/domain/stat"

// Position is the singular position label resolved from element_types.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Player is one row of the players table after the join with teams.
type Player struct {
	FirstName             string
	SecondName            string
	Team                  string
	TeamID                int64
	TotalPoints           stat.Value
	GoalsScored           stat.Value
	Assists               stat.Value
	CleanSheets           stat.Value
	Hours                 stat.Value
	YellowCards           stat.Value
	RedCards              stat.Value
	Form                  stat.Value
	Bonus                 stat.Value
	EventPoints           stat.Value
	Ownership             stat.Value
	Price                 stat.Value
	Influence             stat.Value
	Creativity            stat.Value
	Threat                stat.Value
	ExpectedGoals         stat.Value
	ExpectedAssists       stat.Value
	ExpectedGoalsConceded stat.Value
	Saves                 stat.Value
	ElementType           int64
	Position              Position
}
