package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL string
	AdminPhones map[string]struct{}
	Location    *time.Location
	HTTPAddr    string
	LogLevel    string
	Env         string // dev|prod
	SentryDSN   string

	// Twilio WhatsApp credentials. Sending is simulated when empty.
	TwilioAccountSID string
	TwilioAuthToken  string
	WhatsAppFrom     string // e.g. whatsapp:+14155238886
}

func Load() (*Config, error) {
	tz := getenv("TZ", "Africa/Nairobi")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	admins := parsePhones(os.Getenv("ADMIN_PHONES"))
	if len(admins) == 0 {
		return nil, fmt.Errorf("ADMIN_PHONES is empty, nobody could run commands")
	}

	cfg := &Config{
		DatabaseURL:      mustEnv("DATABASE_URL"),
		AdminPhones:      admins,
		Location:         loc,
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		Env:              getenv("ENV", "dev"),
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		WhatsAppFrom:     os.Getenv("TWILIO_WHATSAPP_FROM"),
	}
	return cfg, nil
}

// IsAdmin reports whether the sender's phone number is on the allow-list.
func (c *Config) IsAdmin(phone string) bool {
	_, ok := c.AdminPhones[normalizePhone(phone)]
	return ok
}

func (c *Config) AdminList() []string {
	out := make([]string, 0, len(c.AdminPhones))
	for p := range c.AdminPhones {
		out = append(out, p)
	}
	return out
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("required env " + k + " is empty")
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// parsePhones reads a CSV/whitespace separated list of admin phone numbers.
func parsePhones(s string) map[string]struct{} {
	s = strings.NewReplacer("\n", ",", "\t", ",", " ", ",", ";", ",").Replace(s)
	m := make(map[string]struct{})
	for _, p := range strings.Split(s, ",") {
		p = normalizePhone(p)
		if p == "" {
			continue
		}
		m[p] = struct{}{}
	}
	return m
}

// normalizePhone strips the whatsapp: channel prefix and a leading plus so
// that "whatsapp:+254700000000" and "254700000000" compare equal.
func normalizePhone(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, "whatsapp:")
	p = strings.TrimPrefix(p, "+")
	return p
}
