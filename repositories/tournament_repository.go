package repositories

import (
	"database/sql"

	"github.com/Dosada05/cricket-tournament/models"
)

var TournamentTable = Table[*models.Tournament]{
	Name:    "tournaments",
	Kind:    models.KindTournament,
	Columns: []string{"name", "start_date", "venue", "status"},
	New:     func() *models.Tournament { return &models.Tournament{} },
	Values: func(t *models.Tournament) []any {
		return []any{t.Name, t.StartDate, t.Venue, t.Status}
	},
	Fields: func(t *models.Tournament) []any {
		return []any{&t.Name, &t.StartDate, &t.Venue, &t.Status}
	},
}

type TournamentRepository = Repository[*models.Tournament]

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return NewPostgresRepository(db, TournamentTable)
}
