// Package metrics exports Prometheus metrics for BinHex codec operations.
package metrics

import (
	"errors"
	"time"

	"github.com/marmos91/binhex/pkg/binhex"
	"github.com/prometheus/client_golang/prometheus"
)

// ============================================================================
// Prometheus Metrics for Codec Operations
// ============================================================================

// Label constants for metrics.
const (
	LabelOperation = "operation"
	LabelStatus    = "status"
	LabelSection   = "section"
)

// Operation label values.
const (
	OperationEncode = "encode"
	OperationDecode = "decode"
)

// Status constants derived from the returned error.
const (
	StatusOK           = "ok"
	StatusBadFormat    = "bad_format"
	StatusBadRLE       = "bad_rle"
	StatusCRCMismatch  = "crc_mismatch"
	StatusInvalidInput = "invalid_input"
	StatusTooLarge     = "too_large"
	StatusError        = "error"
)

// CodecMetrics implements binhex.Metrics on top of Prometheus collectors.
// A nil *CodecMetrics is valid and records nothing.
type CodecMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	bytesProcessed    *prometheus.HistogramVec
	crcFailuresTotal  *prometheus.CounterVec
}

var _ binhex.Metrics = (*CodecMetrics)(nil)

// NewCodecMetrics creates codec metrics and registers them with registry.
// If registry is nil, metrics are created but not registered.
func NewCodecMetrics(registry prometheus.Registerer) *CodecMetrics {
	m := &CodecMetrics{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "binhex",
				Subsystem: "codec",
				Name:      "operations_total",
				Help:      "Total number of encode and decode calls by outcome",
			},
			[]string{LabelOperation, LabelStatus},
		),

		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "binhex",
				Subsystem: "codec",
				Name:      "operation_duration_seconds",
				Help:      "Time spent in encode and decode calls",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
			},
			[]string{LabelOperation},
		),

		bytesProcessed: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "binhex",
				Subsystem: "codec",
				Name:      "bytes",
				Help:      "Container size for encode calls and input size for decode calls",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 10),
			},
			[]string{LabelOperation},
		),

		crcFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "binhex",
				Subsystem: "codec",
				Name:      "crc_failures_total",
				Help:      "Number of CRC verification failures by container section",
			},
			[]string{LabelSection},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.operationsTotal,
			m.operationDuration,
			m.bytesProcessed,
			m.crcFailuresTotal,
		)
	}

	return m
}

// ObserveEncode records a completed encode call.
func (m *CodecMetrics) ObserveEncode(size int, duration time.Duration, err error) {
	m.observe(OperationEncode, size, duration, err)
}

// ObserveDecode records a completed decode call.
func (m *CodecMetrics) ObserveDecode(size int, duration time.Duration, err error) {
	m.observe(OperationDecode, size, duration, err)
}

func (m *CodecMetrics) observe(op string, size int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(op, Status(err)).Inc()
	m.operationDuration.WithLabelValues(op).Observe(duration.Seconds())
	if size > 0 {
		m.bytesProcessed.WithLabelValues(op).Observe(float64(size))
	}
}

// ObserveCRCFailure records a CRC mismatch in section.
func (m *CodecMetrics) ObserveCRCFailure(section binhex.Section) {
	if m == nil {
		return
	}
	m.crcFailuresTotal.WithLabelValues(section.String()).Inc()
}

// Status maps a codec error onto the status label value.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, binhex.ErrCRCMismatch):
		return StatusCRCMismatch
	case errors.Is(err, binhex.ErrBadRunLengthEncoding):
		return StatusBadRLE
	case errors.Is(err, binhex.ErrBadFormat):
		return StatusBadFormat
	case errors.Is(err, binhex.ErrFileNameTooLong),
		errors.Is(err, binhex.ErrInvalidFileName):
		return StatusInvalidInput
	case errors.Is(err, binhex.ErrDataTooLarge),
		errors.Is(err, binhex.ErrResourceTooLarge),
		errors.Is(err, binhex.ErrInputTooLarge):
		return StatusTooLarge
	default:
		return StatusError
	}
}
