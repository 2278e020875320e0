package repositories

import (
	"database/sql"

	"github.com/Dosada05/cricket-tournament/models"
)

var MatchTable = Table[*models.Match]{
	Name:    "matches",
	Kind:    models.KindMatch,
	Columns: []string{"tournament_id", "team1_id", "team2_id", "date", "venue", "winner_id", "status"},
	New:     func() *models.Match { return &models.Match{} },
	Values: func(m *models.Match) []any {
		return []any{m.TournamentID, m.Team1ID, m.Team2ID, m.Date, m.Venue, m.WinnerID, m.Status}
	},
	Fields: func(m *models.Match) []any {
		return []any{&m.TournamentID, &m.Team1ID, &m.Team2ID, &m.Date, &m.Venue, &m.WinnerID, &m.Status}
	},
}

type MatchRepository = Repository[*models.Match]

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return NewPostgresRepository(db, MatchTable)
}
