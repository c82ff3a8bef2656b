package app

import (
	"net/http"
	"strings"

	"github.com/nthenya/chamabot/internal/wa"
)

// webhookHandler receives Twilio's inbound-message form POST, runs the
// command, and replies over the REST API. The webhook itself always answers
// with an empty TwiML document so Twilio does not retry.
func (d *Dispatcher) webhookHandler(sender *wa.Sender, limiter *SenderLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		from := r.PostFormValue("From")
		body := strings.TrimSpace(r.PostFormValue("Body"))
		if from == "" {
			http.Error(w, "missing From", http.StatusBadRequest)
			return
		}

		release := limiter.Lock(from)
		defer release()

		if reply := d.HandleText(r.Context(), from, body); reply != "" {
			if err := sender.Send(from, reply); err != nil {
				d.log.Errorw("send reply", "err", err)
			}
		}

		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte("<Response></Response>"))
	}
}
