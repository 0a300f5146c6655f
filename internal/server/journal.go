package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"creature-server/internal/engine"
)

// JournalHandler предоставляет доступ к журналу решений существ
type JournalHandler struct {
	Service *engine.GameService
}

func NewJournalHandler(s *engine.GameService) *JournalHandler {
	return &JournalHandler{Service: s}
}

// RegisterRoutes регистрирует эндпоинты журнала
func (h *JournalHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/journal", h.handleRecent)
	mux.HandleFunc("/journal/creature", h.handleCreature)
}

// /journal?limit=50 - последние решения всех существ (новые сверху)
func (h *JournalHandler) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 50)

	decisions, err := h.Service.Journal().RecentDecisions(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, decisions)
}

// /journal/creature?id=wolf_1&limit=50 - история решений одного существа
func (h *JournalHandler) handleCreature(w http.ResponseWriter, r *http.Request) {
	creatureID := r.URL.Query().Get("id")
	if creatureID == "" {
		http.Error(w, "id query param is required", http.StatusBadRequest)
		return
	}

	decisions, err := h.Service.Journal().CreatureDecisions(creatureID, parseLimit(r, 50))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, decisions)
}

func parseLimit(r *http.Request, def int) int {
	limit := def
	if s := r.URL.Query().Get("limit"); s != "" {
		fmt.Sscanf(s, "%d", &limit)
	}
	if limit <= 0 || limit > 1000 {
		limit = def
	}
	return limit
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой журнал отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
