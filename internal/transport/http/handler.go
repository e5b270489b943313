package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"hacknight-service/internal/app"
	"hacknight-service/internal/domain"
)

// Handler exposes the game use cases as JSON-over-HTTP endpoints.
type Handler struct {
	service   *app.GameService
	log       *slog.Logger
	publicURL string
}

func NewHandler(service *app.GameService, log *slog.Logger, publicURL string) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Routes registers every endpoint on the router.
func (h *Handler) Routes(router *httprouter.Router) {
	router.POST("/register", h.handleRegister)
	router.POST("/submit", h.handleSubmit)
	router.GET("/leaderboard", h.handleLeaderboard)
	router.DELETE("/leaderboard", h.handleClearLeaderboard)
	router.GET("/game-status", h.handleGetStatus)
	router.POST("/game-status", h.handleSetStatus)
	router.POST("/game-control", h.handleControl)
	router.GET("/challenges", h.handleChallenges)
	router.GET("/ws", h.handleWS)
	router.GET("/qr", h.handleQR)
	router.GET("/healthz", h.handleHealthz)
}

type registerRequest struct {
	Name string `json:"name"`
	Roll string `json:"roll"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Name and roll number are required")
		return
	}

	player, err := h.service.Register(r.Context(), req.Name, req.Roll)
	if err != nil {
		h.writeServiceError(w, err, "Failed to create user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": player})
}

type submitRequest struct {
	UserID      string `json:"userId"`
	ChallengeID int    `json:"challengeId"`
	Answer      string `json:"answer"`
}

type submitResponse struct {
	Correct       bool           `json:"correct"`
	User          *domain.Player `json:"user,omitempty"`
	IsComplete    bool           `json:"isComplete,omitempty"`
	AlreadySolved bool           `json:"alreadySolved,omitempty"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := h.service.Submit(r.Context(), req.UserID, req.ChallengeID, req.Answer)
	if err != nil {
		h.writeServiceError(w, err, "Failed to submit answer")
		return
	}

	// A wrong answer is a plain negative verdict, never an error status.
	if !result.Correct {
		writeJSON(w, http.StatusOK, submitResponse{Correct: false})
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{
		Correct:       true,
		User:          &result.Player,
		IsComplete:    result.IsComplete,
		AlreadySolved: result.AlreadySolved,
	})
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leaderboard": entries})
}

func (h *Handler) handleClearLeaderboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.ClearPlayers(r.Context()); err != nil {
		h.writeServiceError(w, err, "Failed to reset leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Leaderboard reset successfully"})
}

func (h *Handler) handleGetStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	phase, err := h.service.Phase(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch game status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": phase})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	phase, err := h.service.SetPhase(r.Context(), req.Status)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update game status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": phase})
}

type controlRequest struct {
	Action string `json:"action"`
}

func (h *Handler) handleControl(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req controlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid action")
		return
	}

	phase, err := h.service.Control(r.Context(), req.Action)
	if err != nil {
		h.writeServiceError(w, err, "Failed to perform action")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": controlMessage(req.Action),
		"status":  phase,
	})
}

func controlMessage(action string) string {
	switch action {
	case "start":
		return "Game started successfully"
	case "stop":
		return "Game stopped successfully"
	default:
		return "Game reset successfully"
	}
}

// handleChallenges serves the catalog without answers so client pages do not
// need their own copy of the prompts.
func (h *Handler) handleChallenges(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{"challenges": domain.Challenges()})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Write([]byte("ok"))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, domain.ErrChallengeNotFound):
		writeError(w, http.StatusBadRequest, "Invalid challenge")
	case errors.Is(err, domain.ErrInvalidPhase):
		writeError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, domain.ErrInvalidAction):
		writeError(w, http.StatusBadRequest, "Invalid action")
	case errors.Is(err, domain.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrGameNotActive):
		writeError(w, http.StatusConflict, "Game is not active")
	default:
		h.log.Error(fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
