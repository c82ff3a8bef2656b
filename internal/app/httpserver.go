package app

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/export"
	"github.com/nthenya/chamabot/internal/metrics"
	"github.com/nthenya/chamabot/internal/wa"
)

type HTTPServer struct {
	srv *http.Server
}

// StartHTTP serves the Twilio webhook plus the operational endpoints
// (healthz, metrics, Excel export). It shuts down when ctx is done.
func StartHTTP(ctx context.Context, addr string, database *sql.DB, d *Dispatcher, sender *wa.Sender) *HTTPServer {
	mux := http.NewServeMux()
	limiter := NewSenderLimiter()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("WhatsApp Contribution Tracker"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if err := database.PingContext(ctx); err != nil {
			http.Error(w, "db not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		metrics.ObserveDBPing(time.Since(t0))
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/webhook", d.webhookHandler(sender, limiter))
	mux.HandleFunc("/export/contributions.xlsx", exportHandler(database))

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe() // closed via Shutdown below
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	return &HTTPServer{srv: srv}
}

func exportHandler(database *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periodName := r.URL.Query().Get("month")
		if periodName == "" {
			http.Error(w, "month query parameter is required", http.StatusBadRequest)
			return
		}
		period, err := db.GetPeriodByName(r.Context(), database, periodName)
		if errors.Is(err, db.ErrPeriodNotFound) {
			http.Error(w, "month not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		entries, err := db.ListPeriodEntries(r.Context(), database, period.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		f, err := export.ContributionsWorkbook(period.Name, entries)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer func() { _ = f.Close() }()

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="contributions_`+period.Name+`.xlsx"`)
		_ = f.Write(w)
	}
}
