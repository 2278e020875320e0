package models

type DashboardStats struct {
	TournamentsTotal  int `json:"tournaments_total"`
	ActiveTournaments int `json:"active_tournaments"`
	TeamsTotal        int `json:"teams_total"`
	PlayersTotal      int `json:"players_total"`
	MatchesTotal      int `json:"matches_total"`
	ScheduledMatches  int `json:"scheduled_matches"`
}
