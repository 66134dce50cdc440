package calculators

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitcompanion/internal/telemetry/tracing"
	"github.com/2beens/fitcompanion/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/profile/metrics", handler.HandleProfileMetrics).Methods("POST", "OPTIONS").Name("profile-metrics")
	router.HandleFunc("/calories/calculate", handler.HandleCalories).Methods("POST", "OPTIONS").Name("calculate-calories")
}

func (handler *Handler) HandleProfileMetrics(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "calculators.handleProfileMetrics")
	defer span.End()

	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("profile metrics, unmarshal json params: %s", err)
		http.Error(w, "error, invalid profile json", http.StatusBadRequest)
		return
	}

	metrics, err := MetricsForProfile(profile)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeCalcError(w, err)
		return
	}

	pkg.WriteJSON(w, metrics)
}

func (handler *Handler) HandleCalories(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "calculators.handleCalories")
	defer span.End()

	var params CaloriesParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("calories calculator, unmarshal json params: %s", err)
		http.Error(w, "error, invalid calories params json", http.StatusBadRequest)
		return
	}

	res, err := Calories(params)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeCalcError(w, err)
		return
	}

	pkg.WriteJSON(w, res)
}

func writeCalcError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("calculators: %s", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
