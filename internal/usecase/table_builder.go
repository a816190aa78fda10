package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/bootstrap"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/player"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/stat"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/team"
)

// playerColumns is the allow-list read from every bootstrap element.
var playerColumns = []string{
	"first_name", "second_name", "team", "total_points", "goals_scored", "assists",
	"clean_sheets", "now_cost", "minutes", "yellow_cards", "red_cards", "form", "bonus",
	"event_points", "selected_by_percent", "influence", "creativity", "threat",
	"expected_goals", "expected_assists", "expected_goals_conceded", "saves", "element_type",
}

var teamColumns = []string{"id", "name"}

const (
	minutesPerHour  = 60
	costUnitsPerGBP = 10
)

// Tables is the typed form of one bootstrap snapshot. Renderers only read it.
type Tables struct {
	Players      []player.Player
	Teams        []team.Team
	HasPositions bool
}

func (t Tables) TeamNames() []string {
	out := make([]string, 0, len(t.Teams))
	for _, item := range t.Teams {
		out = append(out, item.Name)
	}
	return out
}

func (t Tables) TeamNameByID() map[int64]string {
	out := make(map[int64]string, len(t.Teams))
	for _, item := range t.Teams {
		out[item.ID] = item.Name
	}
	return out
}

func missingColumn(table, column string) error {
	return fmt.Errorf("%w %s.%s", ErrMissingColumn, table, column)
}

// BuildTables reshapes a raw bootstrap into players joined to team names.
// An empty payload yields empty tables; a dropped allow-listed field fails
// with ErrMissingColumn.
func BuildTables(raw bootstrap.Payload) (Tables, error) {
	if raw.IsEmpty() {
		return Tables{Players: []player.Player{}, Teams: []team.Team{}}, nil
	}

	teams, err := buildTeams(raw.Teams)
	if err != nil {
		return Tables{}, err
	}
	nameByID := make(map[int64]string, len(teams))
	for _, item := range teams {
		nameByID[item.ID] = item.Name
	}

	positions, hasPositions := positionLabels(raw.ElementTypes)

	players := make([]player.Player, 0, len(raw.Elements))
	for _, element := range raw.Elements {
		for _, column := range playerColumns {
			if _, ok := element[column]; !ok {
				return Tables{}, missingColumn("elements", column)
			}
		}

		teamID := idOf(element["team"])
		teamName, ok := nameByID[teamID]
		if !ok {
			continue
		}

		row := player.Player{
			FirstName:             textOf(element["first_name"]),
			SecondName:            textOf(element["second_name"]),
			Team:                  teamName,
			TeamID:                teamID,
			TotalPoints:           stat.Parse(element["total_points"]),
			GoalsScored:           stat.Parse(element["goals_scored"]),
			Assists:               stat.Parse(element["assists"]),
			CleanSheets:           stat.Parse(element["clean_sheets"]),
			Hours:                 stat.Parse(element["minutes"]).Div(minutesPerHour),
			YellowCards:           stat.Parse(element["yellow_cards"]),
			RedCards:              stat.Parse(element["red_cards"]),
			Form:                  stat.Parse(element["form"]),
			Bonus:                 stat.Parse(element["bonus"]),
			EventPoints:           stat.Parse(element["event_points"]),
			Ownership:             stat.Parse(element["selected_by_percent"]),
			Price:                 stat.Parse(element["now_cost"]).Div(costUnitsPerGBP),
			Influence:             stat.Parse(element["influence"]),
			Creativity:            stat.Parse(element["creativity"]),
			Threat:                stat.Parse(element["threat"]),
			ExpectedGoals:         stat.Parse(element["expected_goals"]),
			ExpectedAssists:       stat.Parse(element["expected_assists"]),
			ExpectedGoalsConceded: stat.Parse(element["expected_goals_conceded"]),
			Saves:                 stat.Parse(element["saves"]),
			ElementType:           idOf(element["element_type"]),
		}
		if hasPositions {
			row.Position = positions[row.ElementType]
		}
		players = append(players, row)
	}

	return Tables{Players: players, Teams: teams, HasPositions: hasPositions}, nil
}

func buildTeams(items []map[string]any) ([]team.Team, error) {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		for _, column := range teamColumns {
			if _, ok := item[column]; !ok {
				return nil, missingColumn("teams", column)
			}
		}
		out = append(out, team.Team{
			ID:        idOf(item["id"]),
			Name:      textOf(item["name"]),
			ShortName: textOf(item["short_name"]),
		})
	}
	return out, nil
}

// positionLabels is nil,false when the payload carries no element_types.
func positionLabels(items []map[string]any) (map[int64]player.Position, bool) {
	if items == nil {
		return nil, false
	}
	out := make(map[int64]player.Position, len(items))
	for _, item := range items {
		out[idOf(item["id"])] = player.Position(textOf(item["singular_name"]))
	}
	return out, true
}

func idOf(raw any) int64 {
	value := stat.Parse(raw)
	if !value.Valid {
		return 0
	}
	return int64(value.Float)
}

func textOf(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
