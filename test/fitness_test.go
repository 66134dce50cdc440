//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitcompanion/internal/activities"
	"github.com/2beens/fitcompanion/internal/planner"
	"github.com/2beens/fitcompanion/internal/recommendations"
	"github.com/2beens/fitcompanion/internal/workoutplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, body string) (int, []byte) {
	t := s.T()

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestHealth() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	status, body := s.doRequest(ctx, "GET", "/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status": "ok", "redis": "ok", "postgres": "ok"}`, string(body))
}

func (s *IntegrationTestSuite) TestActivitiesFromPostgres() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	status, body := s.doRequest(ctx, "GET", "/activities", "")
	require.Equal(t, http.StatusOK, status)

	var types []string
	require.NoError(t, json.Unmarshal(body, &types))
	assert.Equal(t, []string{"Running", "Cycling", "HIIT", "Walking", "Yoga"}, types)

	// the first Running row wins
	status, body = s.doRequest(ctx, "GET", "/calories/estimate?activity=Running&duration=30", "")
	require.Equal(t, http.StatusOK, status)
	var estimate activities.CalorieEstimateResponse
	require.NoError(t, json.Unmarshal(body, &estimate))
	assert.Equal(t, 11.5, estimate.AvgCalPerMin)
	assert.Equal(t, 345.0, estimate.Calories)

	status, _ = s.doRequest(ctx, "GET", "/calories/estimate?activity=Rowing&duration=30", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestRecommendationsAndPlanner() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	status, body := s.doRequest(ctx, "GET", "/recommendations/goal/lose-weight?targetCalories=230", "")
	require.Equal(t, http.StatusOK, status)
	var goalResp recommendations.GoalResponse
	require.NoError(t, json.Unmarshal(body, &goalResp))
	require.NotNil(t, goalResp.MinutesNeeded)
	assert.Equal(t, 20.0, *goalResp.MinutesNeeded)

	// weight lifting is not in the seeded table
	status, _ = s.doRequest(ctx, "GET", "/recommendations/goal/gain-muscle?targetCalories=230", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = s.doRequest(ctx, "GET", "/recommendations/mood/energetic", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"mood": "Energetic", "exercise": "HIIT", "message": "A quick energizing HIIT"}`, string(body))

	status, body = s.doRequest(ctx, "GET", "/planner/weightloss?kg=2", "")
	require.Equal(t, http.StatusOK, status)
	var plan planner.WeightLossPlan
	require.NoError(t, json.Unmarshal(body, &plan))
	assert.Equal(t, 15400.0, plan.TotalDeficitKcal)
	assert.Equal(t, 3080.0, plan.PerSessionKcal)
}

func (s *IntegrationTestSuite) TestWorkoutPlanAndRateLimit() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	reqBody := `{"age": 30, "heightCm": 170, "weightKg": 70, "gender": "Male",
		"heartRate": 120, "durationMinutes": 30, "days": 7, "workoutType": "HIIT"}`

	status, body := s.doRequest(ctx, "POST", "/workout/plan", reqBody)
	require.Equal(t, http.StatusOK, status, string(body))

	var plan workoutplan.Plan
	require.NoError(t, json.Unmarshal(body, &plan))
	assert.Equal(t, 7, len(plan.Days)+len(plan.OmittedDays))
	for _, day := range plan.Days {
		assert.NotEqual(t, "back", day.MuscleGroup)
		assert.True(t, strings.HasPrefix(day.Name, day.MuscleGroup), day.Name)
	}
	assert.InDelta(t, 305.4, plan.CaloriesBurned, 1e-9)

	// 5 requests per minute are allowed, one already spent
	for i := 0; i < 4; i++ {
		status, _ = s.doRequest(ctx, "POST", "/workout/recommendation", reqBody)
		require.Equal(t, http.StatusOK, status, fmt.Sprintf("request %d", i))
	}
	status, _ = s.doRequest(ctx, "POST", "/workout/recommendation", reqBody)
	assert.Equal(t, http.StatusTooManyRequests, status)
}
