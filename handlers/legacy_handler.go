package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/services"
)

const legacyErrorBody = "Database error"

type legacyRow map[string]any

// LegacyHandler serves the read-only, column-keyed collection endpoints of
// the old standalone service on top of the primary store.
type LegacyHandler struct {
	tournaments services.CRUDService[*models.Tournament]
	teams       services.CRUDService[*models.Team]
	players     services.CRUDService[*models.Player]
	matches     services.CRUDService[*models.Match]
	logger      *slog.Logger
}

func NewLegacyHandler(
	tournaments services.CRUDService[*models.Tournament],
	teams services.CRUDService[*models.Team],
	players services.CRUDService[*models.Player],
	matches services.CRUDService[*models.Match],
	logger *slog.Logger,
) *LegacyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LegacyHandler{
		tournaments: tournaments,
		teams:       teams,
		players:     players,
		matches:     matches,
		logger:      logger.With(slog.String("component", "legacy")),
	}
}

func (h *LegacyHandler) Tournaments(w http.ResponseWriter, r *http.Request) {
	serveLegacy(h, w, r, h.tournaments.List, func(t *models.Tournament) legacyRow {
		return legacyRow{
			"tournament_id": t.ID,
			"name":          t.Name,
			"year":          t.StartDate.Year(),
		}
	})
}

func (h *LegacyHandler) Teams(w http.ResponseWriter, r *http.Request) {
	serveLegacy(h, w, r, h.teams.List, func(t *models.Team) legacyRow {
		return legacyRow{
			"team_id":       t.ID,
			"name":          t.Name,
			"coach":         t.Coach,
			"tournament_id": idOrZero(t.TournamentID),
		}
	})
}

func (h *LegacyHandler) Players(w http.ResponseWriter, r *http.Request) {
	serveLegacy(h, w, r, h.players.List, func(p *models.Player) legacyRow {
		return legacyRow{
			"player_id": p.ID,
			"name":      p.Name,
			"role":      p.Role,
			"team_id":   idOrZero(p.TeamID),
		}
	})
}

func (h *LegacyHandler) Matches(w http.ResponseWriter, r *http.Request) {
	serveLegacy(h, w, r, h.matches.List, func(m *models.Match) legacyRow {
		return legacyRow{
			"match_id":      m.ID,
			"tournament_id": idOrZero(m.TournamentID),
			"team1_id":      idOrZero(m.Team1ID),
			"team2_id":      idOrZero(m.Team2ID),
			"winner_id":     idOrZero(m.WinnerID),
			"match_date":    m.Date.String(),
			"venue":         m.Venue,
		}
	})
}

func serveLegacy[T models.Entity](
	h *LegacyHandler,
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context) ([]T, error),
	toRow func(T) legacyRow,
) {
	entities, err := list(r.Context())
	if err != nil {
		h.logger.Error("legacy query failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(legacyErrorBody))
		return
	}

	rows := make([]legacyRow, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, toRow(e))
	}

	if err := writeJSON(w, http.StatusOK, rows, nil); err != nil {
		h.logger.Error("failed to write JSON response", slog.Any("error", err))
	}
}

// idOrZero mirrors the legacy integer columns, where a missing reference read
// back as 0.
func idOrZero(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
