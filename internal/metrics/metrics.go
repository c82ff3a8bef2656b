package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Messages = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chamabot", Name: "messages_total", Help: "Inbound WhatsApp messages processed",
	})
	Commands = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chamabot", Name: "commands_total", Help: "Commands executed, by verb",
	}, []string{"verb"})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chamabot", Name: "handler_errors_total", Help: "Unexpected handler errors",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "chamabot", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(Messages, Commands, HandlerErrors, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
