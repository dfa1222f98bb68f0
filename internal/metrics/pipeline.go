package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/ingester"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineQueueLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "pipeline",
		Name:      "queue_length",
		Help:      "Number of announced blocks waiting to be processed.",
	}, []string{"network"})

	pipelineProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "pipeline",
		Name:      "process_block_total",
		Help:      "Count of processed blocks by outcome.",
	}, []string{"network", "status"})

	pipelineProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "pipeline",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of fetching, analyzing and persisting one block.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	}, []string{"network", "status"})

	pipelineLastProcessedBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "pipeline",
		Name:      "last_processed_block",
		Help:      "Number of the last successfully processed block.",
	}, []string{"network"})

	pipelineAlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "pipeline",
		Name:      "alerts_total",
		Help:      "Count of raised alerts by kind.",
	}, []string{"network", "kind"})
)

// Pipeline tracks metrics for the block ingestion pipeline.
type Pipeline struct {
	network model.Network
}

// NewPipeline constructs pipeline metrics labelled with network.
func NewPipeline(network model.Network) *Pipeline {
	if network == "" {
		network = "unknown"
	}
	return &Pipeline{network: network}
}

// ObserveQueueLength records the current queue length after an enqueue or a dequeue.
func (m Pipeline) ObserveQueueLength(length int) {
	pipelineQueueLength.WithLabelValues(string(m.network)).Set(float64(length))
}

// ObserveProcessBlock records the outcome and duration of one block.
func (m Pipeline) ObserveProcessBlock(err error, number uint64, started time.Time) {
	status := processStatus(err)
	pipelineProcessBlockTotal.WithLabelValues(string(m.network), status).Inc()
	pipelineProcessBlockDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		pipelineLastProcessedBlock.WithLabelValues(string(m.network)).Set(float64(number))
	}
}

// ObserveAlerts counts alerts raised for a block.
func (m Pipeline) ObserveAlerts(alerts []model.Alert) {
	for _, a := range alerts {
		pipelineAlertsTotal.WithLabelValues(string(m.network), string(a.Kind)).Inc()
	}
}

func processStatus(err error) string {
	var (
		fetchErr *ingester.GatewayFetchError
		storeErr *ingester.StoreWriteError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &fetchErr):
		return "gateway_error"
	case errors.As(err, &storeErr):
		return "store_error"
	default:
		return "error"
	}
}
