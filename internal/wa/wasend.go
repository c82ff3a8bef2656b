package wa

import (
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/nthenya/chamabot/internal/observability"
)

// Sender delivers WhatsApp messages through the Twilio REST API. Without
// credentials it runs in simulated mode and only logs outbound messages,
// which keeps local development useful.
type Sender struct {
	client *twilio.RestClient
	from   string
	log    *zap.SugaredLogger
}

func New(accountSID, authToken, from string, log *zap.SugaredLogger) *Sender {
	if accountSID == "" || authToken == "" {
		log.Warn("twilio credentials not set, whatsapp sending is simulated")
		return &Sender{from: from, log: log}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Sender{client: client, from: from, log: log}
}

func (s *Sender) Send(to, body string) error {
	if s.client == nil {
		s.log.Infow("simulated whatsapp message", "to", to, "body", body)
		return nil
	}

	params := &openapi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(whatsAppAddr(to))
	params.SetBody(body)

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		observability.CaptureErr(err)
		return err
	}
	if msg.Sid != nil {
		s.log.Debugw("whatsapp message sent", "sid", *msg.Sid)
	}
	return nil
}

func whatsAppAddr(to string) string {
	if strings.HasPrefix(to, "whatsapp:") {
		return to
	}
	if !strings.HasPrefix(to, "+") {
		to = "+" + to
	}
	return "whatsapp:" + to
}
