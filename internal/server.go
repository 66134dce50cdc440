package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitcompanion/internal/activities"
	"github.com/2beens/fitcompanion/internal/calculators"
	"github.com/2beens/fitcompanion/internal/config"
	"github.com/2beens/fitcompanion/internal/db"
	"github.com/2beens/fitcompanion/internal/exercisedb"
	"github.com/2beens/fitcompanion/internal/middleware"
	"github.com/2beens/fitcompanion/internal/misc"
	"github.com/2beens/fitcompanion/internal/planner"
	"github.com/2beens/fitcompanion/internal/recommendations"
	"github.com/2beens/fitcompanion/internal/telemetry/metrics"
	"github.com/2beens/fitcompanion/internal/telemetry/tracing"
	"github.com/2beens/fitcompanion/internal/workoutplan"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	// nil unless the activities are loaded from postgres
	dbPool            *pgxpool.Pool
	activities        *activities.Reference
	exerciseDBClient  *exercisedb.Client
	workoutRandomness workoutplan.RandomSource

	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	var (
		dbPool         *pgxpool.Pool
		extraCollector prometheus.Collector
	)
	if cfg.ActivitiesSource == config.ActivitiesSourcePostgres {
		var err error
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			MaxConns:       cfg.PostgresMaxConns,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}

		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		extraCollector = pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		)
	}

	promRegistry := metrics.SetupPrometheus(extraCollector)
	metricsManager := metrics.NewManager("fitcompanion", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitcompanion-service", rdb)
	if err != nil {
		return nil, err
	}

	activitiesRef, err := loadActivities(ctx, cfg, dbPool)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	log.Infof("loaded %d activity types from %s", activitiesRef.Len(), cfg.ActivitiesSource)

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.ExerciseDBTimeout.Duration,
	}

	return &Server{
		config:            cfg,
		versionInfo:       params.VersionInfo,
		dbPool:            dbPool,
		activities:        activitiesRef,
		exerciseDBClient:  exercisedb.NewClient(cfg.ExerciseDBBaseURL, tracedHttpClient, metricsManager),
		workoutRandomness: workoutplan.GlobalRandom{},

		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func loadActivities(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool) (*activities.Reference, error) {
	if cfg.ActivitiesSource == config.ActivitiesSourcePostgres {
		return activities.NewPsqlLoader(dbPool).Load(ctx)
	}

	activitiesCsvFile, err := os.Open(cfg.ActivitiesCsvPath)
	if err != nil {
		return nil, fmt.Errorf("open activities file: %w", err)
	}
	defer func() {
		if err := activitiesCsvFile.Close(); err != nil {
			log.Warnf("close activities csv file: %s", err)
		}
	}()

	return activities.NewReferenceFromCSV(csv.NewReader(activitiesCsvFile))
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	calculators.NewHandler().SetupRoutes(r)
	activities.NewHandler(s.activities).SetupRoutes(r)
	recommendations.NewHandler(s.activities).SetupRoutes(r)
	planner.NewHandler().SetupRoutes(r)

	// the dbPool is passed only when set, so a nil pool never ends up in a non-nil interface
	var miscHandler *misc.Handler
	if s.dbPool != nil {
		miscHandler = misc.NewHandler(s.versionInfo, s.redisClient, s.dbPool)
	} else {
		miscHandler = misc.NewHandler(s.versionInfo, s.redisClient, nil)
	}
	miscHandler.SetupRoutes(r)

	workoutRouter := r.PathPrefix("/workout").Subrouter()
	generator := workoutplan.NewGenerator(s.exerciseDBClient, s.workoutRandomness, s.metricsManager)
	workoutplan.NewHandler(generator).SetupRoutes(workoutRouter)
	// every plan calls the exercise db once per day, so keep the clients in check
	workoutRouter.Use(middleware.RateLimit(
		s.rateLimiter,
		"workout",
		s.config.WorkoutRateLimitAllowedPerMin,
		s.metricsManager,
	))

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
