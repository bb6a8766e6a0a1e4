// Package metrics holds the Prometheus collectors exposed on the bridge's
// /metrics endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BridgeCommandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "soundarchive_bridge_commands_total",
		Help: "Bridge commands by type and outcome (accepted, duplicate, rejected, failed)",
	}, []string{"type", "outcome"})
	BridgeStreamClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "soundarchive_bridge_stream_clients",
		Help: "Connected /stream websocket clients",
	})
	SnapshotsPublishedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "soundarchive_snapshots_published_total",
		Help: "State snapshots published to the bridge hub",
	})
	PlaybackStartsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "soundarchive_playback_starts_total",
		Help: "Simulated playbacks started",
	})
	PlaybackAutoStopsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "soundarchive_playback_auto_stops_total",
		Help: "Auto-stop timers by result (cleared, stale)",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(BridgeCommandsTotal)
	prometheus.MustRegister(BridgeStreamClients)
	prometheus.MustRegister(SnapshotsPublishedTotal)
	prometheus.MustRegister(PlaybackStartsTotal)
	prometheus.MustRegister(PlaybackAutoStopsTotal)
}

// Handler serves every registered collector in the Prometheus text format.
func Handler() http.Handler { return promhttp.Handler() }
