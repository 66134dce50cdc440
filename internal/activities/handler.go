package activities

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/fitcompanion/internal/calculators"
	"github.com/2beens/fitcompanion/internal/telemetry/tracing"
	"github.com/2beens/fitcompanion/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type CalorieEstimateResponse struct {
	Activity        string  `json:"activity"`
	AvgCalPerMin    float64 `json:"avgCalPerMin"`
	DurationMinutes float64 `json:"durationMinutes"`
	Calories        float64 `json:"calories"`
}

type Handler struct {
	reference *Reference
}

func NewHandler(reference *Reference) *Handler {
	return &Handler{
		reference: reference,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/activities", handler.HandleList).Methods("GET", "OPTIONS").Name("list-activities")
	router.HandleFunc("/calories/estimate", handler.HandleEstimate).Methods("GET", "OPTIONS").Name("estimate-calories")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "activities.handleList")
	defer span.End()

	pkg.WriteJSON(w, handler.reference.Types())
}

func (handler *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "activities.handleEstimate")
	defer span.End()

	activity := r.URL.Query().Get("activity")
	if activity == "" {
		http.Error(w, "error, activity empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("activity", activity))

	duration, err := strconv.ParseFloat(r.URL.Query().Get("duration"), 64)
	if err != nil || !calculators.IsPositiveFinite(duration) {
		http.Error(w, "error, duration must be a positive number of minutes", http.StatusBadRequest)
		return
	}

	avg, err := handler.reference.AvgCalPerMin(activity)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "error, unknown activity", http.StatusNotFound)
			return
		}
		log.Errorf("estimate calories for [%s]: %s", activity, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	calories := calculators.CalorieEstimate(avg, duration)
	if math.IsInf(calories, 0) || math.IsNaN(calories) {
		http.Error(w, "error, duration out of range", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, CalorieEstimateResponse{
		Activity:        activity,
		AvgCalPerMin:    avg,
		DurationMinutes: duration,
		Calories:        calories,
	})
}
