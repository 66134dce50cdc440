package planner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitcompanion/internal/calculators"
	"github.com/2beens/fitcompanion/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/planner/weightloss", handler.HandleWeightLoss).Methods("GET", "OPTIONS").Name("weight-loss-plan")
}

func (handler *Handler) HandleWeightLoss(w http.ResponseWriter, r *http.Request) {
	kgParam := r.URL.Query().Get("kg")
	if kgParam == "" {
		http.Error(w, "error, enter desired weight change to see plan", http.StatusBadRequest)
		return
	}

	kg, err := strconv.ParseFloat(kgParam, 64)
	if err != nil {
		http.Error(w, "error, kg must be a number", http.StatusBadRequest)
		return
	}

	plan, err := PlanWeightLoss(kg)
	if err != nil {
		if errors.Is(err, calculators.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("plan weight loss for %v kg: %s", kg, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plan)
}
