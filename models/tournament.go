package models

const DefaultTournamentStatus = "Active"

// Tournament представляет турнир.
type Tournament struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	StartDate Date   `json:"startDate" db:"start_date"`
	Venue     string `json:"venue" db:"venue"`
	Status    string `json:"status" db:"status"`
}

func (t *Tournament) GetID() int64   { return t.ID }
func (t *Tournament) SetID(id int64) { t.ID = id }

func (t *Tournament) ApplyDefaults() {
	if t.Status == "" {
		t.Status = DefaultTournamentStatus
	}
}

func (t *Tournament) Validate() ValidationErrors {
	v := ValidationErrors{}
	v.requireText("name", t.Name, "Tournament name is required")
	v.requireDate("startDate", t.StartDate, "Start date is required")
	v.requireText("venue", t.Venue, "Venue is required")
	return v.orNil()
}

func (t *Tournament) References() []Reference { return nil }
