package repositories

import (
	"database/sql"

	"github.com/Dosada05/cricket-tournament/models"
)

var PlayerTable = Table[*models.Player]{
	Name:    "players",
	Kind:    models.KindPlayer,
	Columns: []string{"name", "team_id", "role", "age", "matches"},
	New:     func() *models.Player { return &models.Player{} },
	Values: func(p *models.Player) []any {
		return []any{p.Name, p.TeamID, p.Role, p.Age, p.Matches}
	},
	Fields: func(p *models.Player) []any {
		return []any{&p.Name, &p.TeamID, &p.Role, &p.Age, &p.Matches}
	},
}

type PlayerRepository = Repository[*models.Player]

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return NewPostgresRepository(db, PlayerTable)
}
