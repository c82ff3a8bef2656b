package app

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/nthenya/chamabot/internal/bot/handlers"
	"github.com/nthenya/chamabot/internal/config"
	"github.com/nthenya/chamabot/internal/ctxutil"
	"github.com/nthenya/chamabot/internal/metrics"
	"github.com/nthenya/chamabot/internal/observability"
)

const (
	unauthorizedReply = "🚫 You are not authorized to use this system. Please contact an admin."
	faultReply        = "⚠️ An error occurred while processing your request. Please try again."
)

// Dispatcher routes one raw command string to its ledger operation and turns
// the outcome into the text sent back over WhatsApp. It keeps no state
// between commands; the database is the only shared resource.
type Dispatcher struct {
	database *sql.DB
	cfg      *config.Config
	log      *zap.SugaredLogger
}

func New(database *sql.DB, cfg *config.Config, log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{database: database, cfg: cfg, log: log}
}

// HandleText processes a single command from sender and returns the reply
// text. Every failure resolves to text; an empty string means no reply is
// owed (blank message).
func (d *Dispatcher) HandleText(ctx context.Context, sender, raw string) string {
	metrics.Messages.Inc()

	verb, args, err := Parse(raw)
	if err != nil {
		var badArgs *BadArgsError
		switch {
		case errors.Is(err, ErrEmptyCommand):
			return ""
		case errors.As(err, &badArgs):
			return badArgs.Usage()
		default:
			// Unknown verbs fail open to guidance.
			return handlers.HelpText()
		}
	}

	if IsMutating(verb) && !d.cfg.IsAdmin(sender) {
		d.log.Infow("unauthorized command", "verb", verb)
		return unauthorizedReply
	}

	metrics.Commands.WithLabelValues(string(verb)).Inc()
	ctx = ctxutil.WithOp(ctxutil.WithSender(ctx, sender), string(verb))
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var reply string
	switch verb {
	case VerbAddMember:
		reply, err = handlers.AddMember(ctx, d.database, args)
	case VerbMarkPaid:
		reply, err = handlers.MarkPaid(ctx, d.database, d.cfg.Location, args)
	case VerbReport:
		reply, err = handlers.Report(ctx, d.database, args[0])
	case VerbAddMonth:
		reply, err = handlers.AddMonth(ctx, d.database, args[0])
	case VerbInitDB:
		reply, err = handlers.InitDB(ctx, d.database)
	case VerbListMembers:
		reply, err = handlers.ListMembers(ctx, d.database)
	case VerbHelp:
		reply = handlers.HelpText()
	}
	if err != nil {
		metrics.HandlerErrors.Inc()
		observability.CaptureErr(err)
		d.log.Errorw("command failed", "verb", verb, "err", err)
		return faultReply
	}
	return reply
}
