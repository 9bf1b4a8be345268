package metrics

import (
	"strconv"
	"sync"
	"time"

	"chainregistry/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ProbeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chainregistry_rpc_probe_total",
		Help: "RPC endpoint probes by chain and result.",
	}, []string{"chain_id", "result"})

	ProbeLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chainregistry_rpc_latency_seconds",
		Help:    "Latency of successful RPC endpoint probes.",
		Buckets: prometheus.DefBuckets,
	}, []string{"chain_id"})

	EndpointUp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "chainregistry_rpc_endpoint_up",
		Help: "1 if the last probe of the endpoint succeeded, 0 otherwise.",
	}, []string{"chain_id", "url"})

	RegisteredChains = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chainregistry_chains",
		Help: "Number of chain descriptors in the registry.",
	})
)

var registerOnce sync.Once

// MustRegisterMetrics registers the collectors with the default registry once.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ProbeTotal, ProbeLatency, EndpointUp, RegisteredChains)
	})
}

// ObserveProbe records one endpoint probe result.
func ObserveProbe(s entity.EndpointStatus) {
	chainID := strconv.FormatUint(s.ChainID, 10)
	result := "ok"
	up := 1.0
	if !s.Healthy {
		result = "error"
		up = 0
	}
	ProbeTotal.WithLabelValues(chainID, result).Inc()
	EndpointUp.WithLabelValues(chainID, s.URL).Set(up)
	if s.Healthy {
		latency := s.Latency
		if latency == 0 {
			latency = time.Duration(s.LatencyMs) * time.Millisecond
		}
		ProbeLatency.WithLabelValues(chainID).Observe(latency.Seconds())
	}
}
