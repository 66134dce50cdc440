package workoutplan

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitcompanion/internal/calculators"
	"github.com/2beens/fitcompanion/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	generator *Generator
}

func NewHandler(generator *Generator) *Handler {
	return &Handler{
		generator: generator,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/recommendation", handler.HandleRecommendation).Methods("POST", "OPTIONS").Name("workout-recommendation")
	router.HandleFunc("/plan", handler.HandlePlan).Methods("POST", "OPTIONS").Name("workout-plan")
}

func (handler *Handler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	recommendation, err := handler.generator.Recommend(req)
	if err != nil {
		writeError(w, "workout recommendation", err)
		return
	}

	pkg.WriteJSON(w, recommendation)
}

func (handler *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	plan, err := handler.generator.Generate(r.Context(), req)
	if err != nil {
		writeError(w, "workout plan", err)
		return
	}

	log.Debugf("workout plan generated: %d days, %d omitted", len(plan.Days), len(plan.OmittedDays))
	pkg.WriteJSON(w, plan)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (Request, bool) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("decode workout request: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return Request{}, false
	}
	return req, true
}

func writeError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, calculators.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("%s: %s", what, err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
