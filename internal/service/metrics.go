package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"eco-waste-api/internal/domain"
)

var storeOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "store_operations_total", Help: "Count of entity store operations by outcome"},
	[]string{"entity", "op", "result"},
)

func init() { prometheus.MustRegister(storeOps) }

func resultOf(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDuplicate):
		return "duplicate"
	case errors.As(err, &ve):
		return "invalid"
	}
	return "error"
}

func observe(entity, op string, err error) {
	storeOps.WithLabelValues(entity, op, resultOf(err)).Inc()
}
