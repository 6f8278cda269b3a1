package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "harmonylink_store_operations_total",
			Help: "Total number of store operations",
		},
		[]string{"entity", "op", "status"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "harmonylink_store_operation_duration_seconds",
			Help:    "Duration of store operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"entity", "op"},
	)
)

func Init() {
	prometheus.MustRegister(OperationCounter)
	prometheus.MustRegister(OperationDuration)
}

// ObserveOperation 记录一次存储操作的结果和耗时
func ObserveOperation(entity, op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	OperationCounter.WithLabelValues(entity, op, status).Inc()
	OperationDuration.WithLabelValues(entity, op).Observe(time.Since(start).Seconds())
}

// Serve 暴露 /metrics，仅在配置显式开启时由调用方启动
func Serve(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(":"+port, mux)
}
