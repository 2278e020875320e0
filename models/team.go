package models

type Team struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	TournamentID *int64  `json:"tournamentId" db:"tournament_id"`
	Captain      string  `json:"captain" db:"captain"`
	Coach        *string `json:"coach" db:"coach"`
	Players      int     `json:"players" db:"players"`
}

func (t *Team) GetID() int64   { return t.ID }
func (t *Team) SetID(id int64) { t.ID = id }

// ApplyDefaults is a no-op: players defaults to zero through the Go zero value.
func (t *Team) ApplyDefaults() {}

func (t *Team) Validate() ValidationErrors {
	v := ValidationErrors{}
	v.requireText("name", t.Name, "Team name is required")
	v.requireText("captain", t.Captain, "Captain name is required")
	return v.orNil()
}

func (t *Team) References() []Reference {
	return []Reference{ref("tournamentId", KindTournament, t.TournamentID)}
}
