package repositories

import (
	"database/sql"

	"github.com/Dosada05/cricket-tournament/models"
)

var TeamTable = Table[*models.Team]{
	Name:    "teams",
	Kind:    models.KindTeam,
	Columns: []string{"name", "tournament_id", "captain", "coach", "players"},
	New:     func() *models.Team { return &models.Team{} },
	Values: func(t *models.Team) []any {
		return []any{t.Name, t.TournamentID, t.Captain, t.Coach, t.Players}
	},
	Fields: func(t *models.Team) []any {
		return []any{&t.Name, &t.TournamentID, &t.Captain, &t.Coach, &t.Players}
	},
}

type TeamRepository = Repository[*models.Team]

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return NewPostgresRepository(db, TeamTable)
}
