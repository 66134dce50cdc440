package exercisedb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/fitcompanion/internal/telemetry/metrics"
	"github.com/2beens/fitcompanion/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oneHour           = 60 * 60
	exercisesCacheTTL = oneHour
	exercisesLimit    = 10
)

// Client fetches exercises by target muscle group, e.g.
// https://v2.exercisedb.io/api/exercises/target/chest?limit=10
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
	metrics    *metrics.Manager
}

func NewClient(baseURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSize),
		metrics:    metricsManager,
	}
}

func (c *Client) FetchByTarget(ctx context.Context, target string) (exercises []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exerciseDB.fetchByTarget")
	span.SetAttributes(attribute.String("target", target))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := []byte("target::" + target)
	if cachedBytes, cacheErr := c.cache.Get(cacheKey); cacheErr == nil {
		if err := json.Unmarshal(cachedBytes, &exercises); err == nil {
			log.Tracef("found exercises for target %s in cache", target)
			c.metrics.CounterExerciseDBCalls.WithLabelValues(metrics.ExerciseDBResultCached).Inc()
			return exercises, nil
		} else {
			log.Errorf("failed to unmarshal cached exercises for target %s: %s", target, err)
		}
	}

	start := time.Now()
	exercises, err = c.fetch(ctx, target)
	c.metrics.HistExerciseDBDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.CounterExerciseDBCalls.WithLabelValues(metrics.ExerciseDBResultFailed).Inc()
		return nil, err
	}

	if len(exercises) == 0 {
		c.metrics.CounterExerciseDBCalls.WithLabelValues(metrics.ExerciseDBResultEmptyList).Inc()
		return exercises, nil
	}
	c.metrics.CounterExerciseDBCalls.WithLabelValues(metrics.ExerciseDBResultOK).Inc()

	exercisesBytes, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal exercises for cache, target %s: %s", target, err)
		return exercises, nil
	}
	if err := c.cache.Set(cacheKey, exercisesBytes, exercisesCacheTTL); err != nil {
		log.Errorf("failed to write exercises cache for target %s: %s", target, err)
	}

	return exercises, nil
}

func (c *Client) fetch(ctx context.Context, target string) ([]Exercise, error) {
	reqURL := fmt.Sprintf("%s/api/exercises/target/%s?limit=%d", c.baseURL, url.PathEscape(target), exercisesLimit)
	log.Debugf("calling exercise db: %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read exercise db response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("exercise db responded with status %d for target %s", resp.StatusCode, target)
	}

	var apiExercises []apiExercise
	if err := json.Unmarshal(respBytes, &apiExercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercise db response: %w", err)
	}

	exercises := make([]Exercise, 0, len(apiExercises))
	for _, e := range apiExercises {
		exercises = append(exercises, e.toExercise())
	}

	return exercises, nil
}
