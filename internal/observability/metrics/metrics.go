package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var defaultHistogramBucketsSeconds = []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30}

// Collectors are created eagerly so recording works before Init (tests never
// call Init). Init registers them and starts the /metrics server.
var (
	once          sync.Once
	metricsRouter *chi.Mux

	registryLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registry_latency_seconds",
			Help:    "Histogram of asset registry call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"registry", "method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	stakingOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staking_operation_count",
			Help: "Number of stake/unstake calls by outcome (success or error code)",
		},
		[]string{"operation", "outcome"},
	)

	stakingOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_operation_duration_seconds",
			Help:    "Histogram of stake/unstake call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "batch_size"},
	)

	rewardMintedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reward_minted_count",
			Help: "The total number of reward assets minted",
		},
	)

	rollbackFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rollback_failure_count",
			Help: "Number of compensating registry calls that failed while rolling back a call",
		},
		[]string{"step"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "route", "status"},
	)

	stakersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stakers",
			Help: "Number of addresses that have ever staked",
		},
	)

	activeStakersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_stakers",
			Help: "Number of addresses with at least one staked asset",
		},
	)

	stakedAssetsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "staked_assets",
			Help: "Number of assets currently in custody",
		},
	)

	claimedAssetsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "claimed_assets",
			Help: "Number of assets that already paid their reward",
		},
	)
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics registers the Prometheus metrics.
func registerMetrics() {
	prometheus.MustRegister(
		registryLatency,
		dbLatency,
		stakingOperationCounter,
		stakingOperationDuration,
		rewardMintedCounter,
		rollbackFailureCounter,
		queueSendErrorCounter,
		pollerDurationHistogram,
		httpRequestDuration,
		stakersGauge,
		activeStakersGauge,
		stakedAssetsGauge,
		claimedAssetsGauge,
	)
}

func RecordRegistryLatency(d time.Duration, registry, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	registryLatency.WithLabelValues(registry, method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

// RecordStakingOperation counts a stake/unstake call. outcome is "success" or
// the error code the call failed with.
func RecordStakingOperation(d time.Duration, operation string, batchSize int, outcome string) {
	stakingOperationCounter.WithLabelValues(operation, outcome).Inc()
	stakingOperationDuration.WithLabelValues(operation, strconv.Itoa(batchSize)).Observe(d.Seconds())
}

func IncRewardMinted(n int) {
	rewardMintedCounter.Add(float64(n))
}

func IncRollbackFailures(step string) {
	rollbackFailureCounter.WithLabelValues(step).Inc()
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}

func RecordHTTPRequest(d time.Duration, method, route string, statusCode int) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(statusCode)).Observe(d.Seconds())
}

func RecordLedgerStats(stakers, activeStakers, stakedAssets, claimedAssets int) {
	stakersGauge.Set(float64(stakers))
	activeStakersGauge.Set(float64(activeStakers))
	stakedAssetsGauge.Set(float64(stakedAssets))
	claimedAssetsGauge.Set(float64(claimedAssets))
}
