package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Belphemur/GameHub/internal/config"
)

// DefaultPort serves metrics when no port is configured
const DefaultPort = 9090

// NewHTTPServer serves the default registry at /metrics, on its own port so the
// public site never exposes it.
func NewHTTPServer(address string, port int) *http.Server {
	if port == 0 {
		port = DefaultPort
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog:          errorLog{},
		EnableOpenMetrics: true,
	}))
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// errorLog reports collection failures through the application logger
type errorLog struct{}

func (errorLog) Println(v ...any) {
	logger := config.GetLogger()
	logger.Error().Msg(fmt.Sprint(v...))
}
