package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitcompanion/internal/telemetry/tracing"
	"github.com/2beens/fitcompanion/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDisabled = "disabled"

	healthCheckTimeout = 2 * time.Second
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	versionInfo string
	rdb         *redis.Client
	// nil when the activities are not loaded from postgres
	db dbPinger
}

type HealthResponse struct {
	Status   string `json:"status"`
	Redis    string `json:"redis"`
	Postgres string `json:"postgres"`
}

func NewHandler(versionInfo string, rdb *redis.Client, db dbPinger) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		rdb:         rdb,
		db:          db,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   statusOK,
		Redis:    statusOK,
		Postgres: statusDisabled,
	}

	if err := handler.rdb.Ping(ctx).Err(); err != nil {
		log.Errorf("health: redis ping: %s", err)
		resp.Redis = statusDown
		resp.Status = statusDown
	}

	if handler.db != nil {
		resp.Postgres = statusOK
		if err := handler.db.Ping(ctx); err != nil {
			log.Errorf("health: postgres ping: %s", err)
			resp.Postgres = statusDown
			resp.Status = statusDown
		}
	}

	if resp.Status != statusOK {
		span.SetStatus(codes.Error, "unhealthy")
		if err := writeJSONStatus(w, http.StatusServiceUnavailable, resp); err != nil {
			log.Errorf("health: write response: %s", err)
		}
		return
	}

	pkg.WriteJSON(w, resp)
}
