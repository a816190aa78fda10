package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/player"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/stat"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

const bestPlayersLimit = 11

type scoredPlayer struct {
	player player.Player
	score  stat.Value
}

func renderBestPlayers(_ context.Context, rc renderContext, in ViewInput) (view.View, error) {
	out := view.New(view.PageBestPlayers)
	if !rc.tables.HasPositions {
		out.Notify(view.NoticeError, "The 'position' column is missing in the data.")
		return out, nil
	}

	positions := make([]string, 0, 4)
	for _, p := range rc.tables.Players {
		if p.Position != "" {
			positions = append(positions, string(p.Position))
		}
	}
	positions = uniqueStrings(positions)
	out.Options["position"] = positions

	position := player.Position(strings.TrimSpace(in.Position))
	if position == "" {
		position = player.PositionForward
		if !slices.Contains(positions, string(position)) && len(positions) > 0 {
			position = player.Position(positions[0])
		}
	}

	metrics, ok := player.MetricsByPosition[position]
	if !ok {
		return view.View{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, position)
	}
	candidates := make([]player.Player, 0)
	for _, p := range rc.tables.Players {
		if p.Position == position {
			candidates = append(candidates, p)
		}
	}
	if missing := metricsWithoutValues(candidates, metrics); len(missing) > 0 {
		out.Notify(view.NoticeError, "Missing columns: "+strings.Join(missing, ", "))
		return out, nil
	}

	scored := make([]scoredPlayer, 0, len(candidates))
	for _, p := range candidates {
		values := make([]stat.Value, 0, len(metrics))
		for _, metric := range metrics {
			value, _ := p.Value(metric)
			values = append(values, value)
		}
		scored = append(scored, scoredPlayer{player: p, score: stat.Sum(values...)})
	}
	slices.SortStableFunc(scored, func(a, b scoredPlayer) int {
		return stat.CompareDesc(a.score, b.score)
	})
	scored = head(scored, bestPlayersLimit)

	top := make([]player.Player, 0, len(scored))
	scores := make([]stat.Value, 0, len(scored))
	for _, item := range scored {
		top = append(top, item.player)
		scores = append(scores, item.score)
	}

	out.Charts = append(out.Charts, view.Chart{
		Kind:       view.ChartBar,
		Title:      "Best 11 Players by Metrics",
		XLabel:     "Player",
		YLabel:     "Total Score",
		Categories: secondNames(top),
		Series:     []view.Series{teamColoredSeries("Total Score", top, scores, rc.colors)},
		Height:     chartHeight,
		Template:   view.DarkTemplate,
	})

	columns := []string{columnFirstName, columnSecondName, columnTeam, columnPosition}
	for _, metric := range metrics {
		columns = append(columns, string(metric))
	}
	table := playerTable("Detailed Player Information", columns, top)
	table.Columns = append(table.Columns, "total_score")
	for i := range table.Rows {
		table.Rows[i] = append(table.Rows[i], scores[i])
	}
	out.Tables = append(out.Tables, table)

	if len(top) == 0 {
		out.Notify(view.NoticeInfo, fmt.Sprintf("No players found for position '%s'.", position))
	}
	return out, nil
}

// metricsWithoutValues lists the metrics that no player carries a parseable value for.
func metricsWithoutValues(players []player.Player, metrics []player.Metric) []string {
	if len(players) == 0 {
		return nil
	}
	missing := make([]string, 0)
	for _, metric := range metrics {
		present := false
		for _, p := range players {
			if value, ok := p.Value(metric); ok && value.Valid {
				present = true
				break
			}
		}
		if !present {
			missing = append(missing, string(metric))
		}
	}
	return missing
}
