package services

import (
	apperrors "roombook/errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics đếm số thao tác theo kết quả
type Metrics struct {
	operations *prometheus.CounterVec
	transfered *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roombook",
			Name:      "operations_total",
			Help:      "Booking operations by name and result code.",
		}, []string{"operation", "result"}),
		transfered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roombook",
			Name:      "transferred_value_total",
			Help:      "Value moved by committed operations, by transfer reason.",
		}, []string{"reason"}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.transfered)
	}
	return m
}

// Observe ghi nhận kết quả một thao tác
func (m *Metrics) Observe(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = string(apperrors.CodeOf(err))
		if result == "" {
			result = "error"
		}
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// AddTransferred cộng số tiền đã chuyển sau khi commit
func (m *Metrics) AddTransferred(reason string, amount uint64) {
	if m == nil || amount == 0 {
		return
	}
	m.transfered.WithLabelValues(reason).Add(float64(amount))
}
