// Package mockarena is a stand-in arena service for local development and
// demos. It speaks the same JSON contract as the real backend — leaderboard
// feed, code analysis, code optimization — with a deterministic heuristic
// analyzer and an in-memory scoreboard. It is a separate process, not an
// offline mode: the client still fails honestly when nothing is listening.
package mockarena

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"codeclash/internal/arena"
	"codeclash/internal/logging"
)

// syntaxErrorMarker in submitted code makes the analyzer report an in-band
// error, so client error paths can be demonstrated end to end.
const syntaxErrorMarker = "syntax error"

// Service holds the scoreboard. Best score per user wins.
type Service struct {
	mu     sync.RWMutex
	scores map[string]float64
	logger *zap.Logger
}

// New creates an empty Service.
func New() *Service {
	return &Service{
		scores: make(map[string]float64),
		logger: logging.Mock(),
	}
}

// Handler returns the HTTP surface: GET /leaderboard, POST /analyze,
// POST /optimize.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/leaderboard", s.handleLeaderboard)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/optimize", s.handleOptimize)

	return r
}

// Record stores a score for a user, keeping their best.
func (s *Service) Record(username string, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.scores[username]; !ok || score > prev {
		s.scores[username] = score
	}
}

// Standings returns the scoreboard sorted by score descending, ties broken
// by username so the order is stable.
func (s *Service) Standings() []arena.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]arena.LeaderboardEntry, 0, len(s.scores))
	for user, score := range s.scores {
		entries = append(entries, arena.LeaderboardEntry{Username: user, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Username < entries[j].Username
	})
	return entries
}

func (s *Service) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		Leaderboard []arena.LeaderboardEntry `json:"leaderboard"`
	}{Leaderboard: s.Standings()}

	writeJSON(w, payload)
}

func (s *Service) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var sub arena.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	s.logger.Info("analyze request",
		zap.String("username", sub.Username),
		zap.String("language", string(sub.Language)),
		zap.Int("code_bytes", len(sub.Code)))

	if msg := rejectSubmission(sub); msg != "" {
		writeJSON(w, map[string]string{"error": msg})
		return
	}

	report := Analyze(sub.Code, sub.Language)
	s.Record(sub.Username, report.ReadabilityScore)

	writeJSON(w, report)
}

func (s *Service) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var sub arena.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	s.logger.Info("optimize request",
		zap.String("username", sub.Username),
		zap.String("language", string(sub.Language)))

	if msg := rejectSubmission(sub); msg != "" {
		writeJSON(w, map[string]string{"error": msg})
		return
	}

	writeJSON(w, map[string]string{"optimized_code": Optimize(sub.Code, sub.Language)})
}

// rejectSubmission mirrors what the real backend refuses: blank fields
// (the client validates these locally, but curl users don't) and code the
// parser chokes on.
func rejectSubmission(sub arena.Submission) string {
	if strings.TrimSpace(sub.Username) == "" {
		return "username is required"
	}
	if strings.TrimSpace(sub.Code) == "" {
		return "code is required"
	}
	if strings.Contains(strings.ToLower(sub.Code), syntaxErrorMarker) {
		return "syntax error: could not parse submission"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
