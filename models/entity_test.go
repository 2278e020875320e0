package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestKind_Title(t *testing.T) {
	assert.Equal(t, "Tournament", KindTournament.Title())
	assert.Equal(t, "Match", KindMatch.Title())
	assert.Equal(t, "", Kind("").Title())
}

func TestValidationErrors_Error(t *testing.T) {
	v := ValidationErrors{"venue": "Venue is required", "name": "Tournament name is required"}
	assert.Equal(t, "Tournament name is required; Venue is required", v.Error())
}

func TestTournament_ValidateAndDefaults(t *testing.T) {
	tournament := &Tournament{}
	verrs := tournament.Validate()
	require.Len(t, verrs, 3)
	assert.Equal(t, "Tournament name is required", verrs["name"])
	assert.Equal(t, "Start date is required", verrs["startDate"])
	assert.Equal(t, "Venue is required", verrs["venue"])

	tournament = &Tournament{Name: "Summer Cup", StartDate: NewDate(2025, time.June, 1), Venue: "Oval"}
	tournament.ApplyDefaults()
	assert.Nil(t, tournament.Validate())
	assert.Equal(t, "Active", tournament.Status)

	tournament.Status = "Completed"
	tournament.ApplyDefaults()
	assert.Equal(t, "Completed", tournament.Status)
}

func TestTournament_JSONShape(t *testing.T) {
	tournament := &Tournament{ID: 1, Name: "Summer Cup", StartDate: NewDate(2025, time.June, 1), Venue: "Oval", Status: "Active"}
	raw, err := json.Marshal(tournament)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Summer Cup","startDate":"2025-06-01","venue":"Oval","status":"Active"}`, string(raw))
}

func TestTeam_Validate(t *testing.T) {
	verrs := (&Team{Name: "  "}).Validate()
	assert.Equal(t, "Team name is required", verrs["name"])
	assert.Equal(t, "Captain name is required", verrs["captain"])

	team := &Team{Name: "Lions", Captain: "Ravi"}
	assert.Nil(t, team.Validate())
	assert.Equal(t, 0, team.Players)
}

func TestPlayer_Validate(t *testing.T) {
	verrs := (&Player{}).Validate()
	assert.Equal(t, "Player name is required", verrs["name"])
	assert.Equal(t, "Role is required", verrs["role"])
	assert.Nil(t, (&Player{Name: "Asha", Role: "Bowler"}).Validate())
}

func TestMatch_ValidateAndDefaults(t *testing.T) {
	verrs := (&Match{}).Validate()
	assert.Equal(t, "Match date is required", verrs["date"])
	assert.Equal(t, "Venue is required", verrs["venue"])

	match := &Match{Date: NewDate(2025, time.July, 4), Venue: "Eden"}
	match.ApplyDefaults()
	assert.Nil(t, match.Validate())
	assert.Equal(t, "Scheduled", match.Status)
}

func TestMatch_References(t *testing.T) {
	match := &Match{TournamentID: int64Ptr(1), Team1ID: int64Ptr(2), Team2ID: int64Ptr(3)}
	refs := match.References()
	require.Len(t, refs, 4)
	assert.Equal(t, KindTournament, refs[0].Kind)
	assert.Equal(t, "team2Id", refs[2].Field)
	assert.Nil(t, refs[3].ID)
	assert.Equal(t, "winnerId -> team(nil)", refs[3].String())
}

func TestChangeEvent_Type(t *testing.T) {
	assert.Equal(t, "team.updated", ChangeEvent{Kind: KindTeam, Action: ActionUpdated}.Type())
}
