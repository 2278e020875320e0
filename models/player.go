package models

type Player struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	TeamID  *int64 `json:"teamId" db:"team_id"`
	Role    string `json:"role" db:"role"`
	Age     *int   `json:"age" db:"age"`
	Matches int    `json:"matches" db:"matches"`
}

func (p *Player) GetID() int64   { return p.ID }
func (p *Player) SetID(id int64) { p.ID = id }

func (p *Player) ApplyDefaults() {}

func (p *Player) Validate() ValidationErrors {
	v := ValidationErrors{}
	v.requireText("name", p.Name, "Player name is required")
	v.requireText("role", p.Role, "Role is required")
	return v.orNil()
}

func (p *Player) References() []Reference {
	return []Reference{ref("teamId", KindTeam, p.TeamID)}
}
