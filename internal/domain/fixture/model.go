package fixture

import "time"

type Status string

const (
	StatusFinished    Status = "Finished"
	StatusProvisional Status = "Provisional"
	StatusUpcoming    Status = "Upcoming"
)

// ScorePlaceholder is shown for a score that has not been recorded.
const ScorePlaceholder = "-"

// Fixture is a match as delivered by the fixtures endpoint, teams still referenced by id.
type Fixture struct {
	ID                  int64
	Event               int
	HomeTeamID          int64
	AwayTeamID          int64
	KickoffAt           *time.Time
	Finished            bool
	FinishedProvisional bool
	HomeScore           *int
	AwayScore           *int
}

// Row is a fixture resolved for display.
type Row struct {
	Date      string
	Time      string
	Home      string
	Away      string
	HomeScore *int
	AwayScore *int
	Status    Status
}

func DeriveStatus(f Fixture) Status {
	switch {
	case f.Finished:
		return StatusFinished
	case f.FinishedProvisional:
		return StatusProvisional
	default:
		return StatusUpcoming
	}
}

// Resolve maps team ids to names and splits the kickoff into UTC date and HH:MM time.
func Resolve(f Fixture, teamNameByID map[int64]string) Row {
	row := Row{
		Home:      teamNameByID[f.HomeTeamID],
		Away:      teamNameByID[f.AwayTeamID],
		HomeScore: f.HomeScore,
		AwayScore: f.AwayScore,
		Status:    DeriveStatus(f),
	}
	if f.KickoffAt != nil && !f.KickoffAt.IsZero() {
		kickoff := f.KickoffAt.UTC()
		row.Date = kickoff.Format(time.DateOnly)
		row.Time = kickoff.Format("15:04")
	}
	return row
}

func (r Row) Involves(teamName string) bool {
	return r.Home == teamName || r.Away == teamName
}
