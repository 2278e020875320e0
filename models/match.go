package models

const DefaultMatchStatus = "Scheduled"

type Match struct {
	ID           int64  `json:"id" db:"id"`
	TournamentID *int64 `json:"tournamentId" db:"tournament_id"`
	Team1ID      *int64 `json:"team1Id" db:"team1_id"`
	Team2ID      *int64 `json:"team2Id" db:"team2_id"`
	Date         Date   `json:"date" db:"date"`
	Venue        string `json:"venue" db:"venue"`
	WinnerID     *int64 `json:"winnerId" db:"winner_id"`
	Status       string `json:"status" db:"status"`
}

func (m *Match) GetID() int64   { return m.ID }
func (m *Match) SetID(id int64) { m.ID = id }

func (m *Match) ApplyDefaults() {
	if m.Status == "" {
		m.Status = DefaultMatchStatus
	}
}

func (m *Match) Validate() ValidationErrors {
	v := ValidationErrors{}
	v.requireDate("date", m.Date, "Match date is required")
	v.requireText("venue", m.Venue, "Venue is required")
	return v.orNil()
}

func (m *Match) References() []Reference {
	return []Reference{
		ref("tournamentId", KindTournament, m.TournamentID),
		ref("team1Id", KindTeam, m.Team1ID),
		ref("team2Id", KindTeam, m.Team2ID),
		ref("winnerId", KindTeam, m.WinnerID),
	}
}
