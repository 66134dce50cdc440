package planner

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fitcompanion/internal/calculators"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPlanWeightLoss(t *testing.T) {
	plan, err := PlanWeightLoss(2)
	require.NoError(t, err)
	assert.Equal(t, 15400.0, plan.TotalDeficitKcal)
	assert.Equal(t, 3080.0, plan.PerSessionKcal)
	require.Len(t, plan.Sessions, 5)
	for i, s := range plan.Sessions {
		assert.Equal(t, i+1, s.Number)
		assert.Equal(t, 3080.0, s.DeficitKcal)
	}

	plan, err = PlanWeightLoss(0.5)
	require.NoError(t, err)
	assert.Equal(t, 3850.0, plan.TotalDeficitKcal)
	assert.Equal(t, 770.0, plan.PerSessionKcal)
}

func TestPlanWeightLoss_InvalidInput(t *testing.T) {
	for _, kg := range []float64{0, -1, -0.1, math.NaN(), math.Inf(1), math.Inf(-1), 1e306} {
		plan, err := PlanWeightLoss(kg)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, calculators.ErrInvalidInput)
	}
}

func TestHandler_HandleWeightLoss(t *testing.T) {
	r := mux.NewRouter()
	NewHandler().SetupRoutes(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/planner/weightloss?kg=2", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var plan WeightLossPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
	assert.Equal(t, 2.0, plan.DesiredKg)
	assert.Equal(t, 15400.0, plan.TotalDeficitKcal)
	assert.Len(t, plan.Sessions, 5)

	for _, url := range []string{
		"/planner/weightloss",
		"/planner/weightloss?kg=abc",
		"/planner/weightloss?kg=0",
		"/planner/weightloss?kg=-3",
		"/planner/weightloss?kg=NaN",
		"/planner/weightloss?kg=Inf",
		"/planner/weightloss?kg=-Inf",
		"/planner/weightloss?kg=1e306",
	} {
		rr = httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", url, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code, url)
	}
}
