package recommendations

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/fitcompanion/internal/activities"
	"github.com/2beens/fitcompanion/internal/telemetry/tracing"
	"github.com/2beens/fitcompanion/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type GoalResponse struct {
	Goal            Goal             `json:"goal"`
	Recommendations []Recommendation `json:"recommendations"`
	TargetCalories  float64          `json:"targetCalories,omitempty"`
	TargetExercise  string           `json:"targetExercise,omitempty"`
	MinutesNeeded   *float64         `json:"minutesNeeded,omitempty"`
}

type MoodResponse struct {
	Mood Mood `json:"mood"`
	MoodBoost
}

type Handler struct {
	reference calorieReference
}

func NewHandler(reference calorieReference) *Handler {
	return &Handler{
		reference: reference,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/recommendations/goal/{goal}", handler.HandleGoal).Methods("GET", "OPTIONS").Name("goal-recommendations")
	router.HandleFunc("/recommendations/mood/{mood}", handler.HandleMood).Methods("GET", "OPTIONS").Name("mood-booster")
}

func (handler *Handler) HandleGoal(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "recommendations.handleGoal")
	defer span.End()

	goal := ParseGoal(mux.Vars(r)["goal"])
	span.SetAttributes(attribute.String("goal", string(goal)))

	resp := GoalResponse{
		Goal:            goal,
		Recommendations: ForGoal(goal),
	}

	targetCaloriesParam := r.URL.Query().Get("targetCalories")
	if targetCaloriesParam == "" {
		pkg.WriteJSON(w, resp)
		return
	}

	targetCalories, err := strconv.ParseFloat(targetCaloriesParam, 64)
	if err != nil || targetCalories < 0 || math.IsNaN(targetCalories) || math.IsInf(targetCalories, 1) {
		http.Error(w, "error, targetCalories must be a non-negative number", http.StatusBadRequest)
		return
	}
	if targetCalories == 0 || len(resp.Recommendations) == 0 {
		pkg.WriteJSON(w, resp)
		return
	}

	minutes, exercise, err := MinutesToBurn(goal, targetCalories, handler.reference)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrTargetOutOfRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, activities.ErrActivityNotFound) {
			log.Warnf("minutes to burn for goal [%s]: %s", goal, err)
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("minutes to burn for goal [%s]: %s", goal, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp.TargetCalories = targetCalories
	resp.TargetExercise = exercise
	resp.MinutesNeeded = &minutes

	pkg.WriteJSON(w, resp)
}

func (handler *Handler) HandleMood(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "recommendations.handleMood")
	defer span.End()

	mood := ParseMood(mux.Vars(r)["mood"])
	span.SetAttributes(attribute.String("mood", string(mood)))

	pkg.WriteJSON(w, MoodResponse{
		Mood:      mood,
		MoodBoost: ForMood(mood),
	})
}
