// Package metrics exposes Prometheus metrics for a mcproto endpoint:
// packet volumes, framing/compression behavior, and schema decode failures.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "mcproto"
	subsystem = "endpoint"
)

// Label names for endpoint metrics.
const (
	labelDirection = "direction"
	labelState     = "state"
	labelPacket    = "packet"
)

// Collector holds all mcproto Prometheus metrics.
type Collector struct {
	// PacketsDecoded counts successfully parsed packets, labeled by
	// direction, protocol state, and packet name.
	PacketsDecoded *prometheus.CounterVec

	// PacketsEncoded counts successfully emitted packets, labeled the same way.
	PacketsEncoded *prometheus.CounterVec

	// DecodeErrors counts packet decode failures, labeled by direction and
	// state (the packet name is not yet known when decoding fails on the id).
	DecodeErrors *prometheus.CounterVec

	// FramesCompressed counts frames written with a compressed body.
	FramesCompressed prometheus.Counter

	// FramesUncompressed counts frames written below the compression threshold.
	FramesUncompressed prometheus.Counter

	// BytesSent is the running total of post-framing bytes written.
	BytesSent prometheus.Counter

	// BytesReceived is the running total of pre-framing bytes read.
	BytesReceived prometheus.Counter

	// StateTransitions counts endpoint state switches.
	StateTransitions *prometheus.CounterVec
}

// NewCollector creates a Collector with all metrics registered against reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := newMetrics()

	reg.MustRegister(
		c.PacketsDecoded,
		c.PacketsEncoded,
		c.DecodeErrors,
		c.FramesCompressed,
		c.FramesUncompressed,
		c.BytesSent,
		c.BytesReceived,
		c.StateTransitions,
	)

	return c
}

func newMetrics() *Collector {
	packetLabels := []string{labelDirection, labelState, labelPacket}
	errorLabels := []string{labelDirection, labelState}
	transitionLabels := []string{"from_state", "to_state"}

	return &Collector{
		PacketsDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "packets_decoded_total",
			Help:      "Total packets successfully parsed from a frame body.",
		}, packetLabels),

		PacketsEncoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "packets_encoded_total",
			Help:      "Total packets successfully emitted into a frame body.",
		}, packetLabels),

		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_errors_total",
			Help:      "Total packet decode failures (unknown id, malformed body).",
		}, errorLabels),

		FramesCompressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frames_compressed_total",
			Help:      "Total outgoing frames whose body met the compression threshold.",
		}),

		FramesUncompressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "frames_uncompressed_total",
			Help:      "Total outgoing frames sent with an uncompressed body.",
		}),

		BytesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_sent_total",
			Help:      "Total post-framing bytes written to the transport.",
		}),

		BytesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_received_total",
			Help:      "Total pre-framing bytes read from the transport.",
		}),

		StateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "state_transitions_total",
			Help:      "Total endpoint protocol state switches.",
		}, transitionLabels),
	}
}

// RecordDecode increments the decoded-packet counter for (direction, state, packet).
func (c *Collector) RecordDecode(direction, state, packet string) {
	c.PacketsDecoded.WithLabelValues(direction, state, packet).Inc()
}

// RecordEncode increments the encoded-packet counter for (direction, state, packet).
func (c *Collector) RecordEncode(direction, state, packet string) {
	c.PacketsEncoded.WithLabelValues(direction, state, packet).Inc()
}

// RecordDecodeError increments the decode-error counter for (direction, state).
func (c *Collector) RecordDecodeError(direction, state string) {
	c.DecodeErrors.WithLabelValues(direction, state).Inc()
}

// RecordFrame records one written frame's compression outcome and size.
func (c *Collector) RecordFrame(compressed bool, bytesOut int) {
	if compressed {
		c.FramesCompressed.Inc()
	} else {
		c.FramesUncompressed.Inc()
	}
	c.BytesSent.Add(float64(bytesOut))
}

// RecordBytesReceived adds n to the received-bytes counter.
func (c *Collector) RecordBytesReceived(n int) {
	c.BytesReceived.Add(float64(n))
}

// RecordStateTransition increments the transition counter for (from, to).
func (c *Collector) RecordStateTransition(from, to string) {
	c.StateTransitions.WithLabelValues(from, to).Inc()
}
