package ctxutil

import (
	"context"
	"time"
)

// private keys to avoid collisions
type key int

const (
	keySender key = iota
	keyOpName
)

// WithSender tags the context with the phone number driving this command.
func WithSender(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, keySender, phone)
}

func Sender(ctx context.Context) (string, bool) {
	v := ctx.Value(keySender)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// WithOp tags the context with the operation name, for logs.
func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOpName, name)
}

func Op(ctx context.Context) (string, bool) {
	v := ctx.Value(keyOpName)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

var DefaultDBTimeout = 5 * time.Second

// WithDBTimeout bounds store calls; if the parent deadline is already
// tighter, the remainder is used instead.
func WithDBTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		remain := time.Until(dl)
		if remain < DefaultDBTimeout {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, DefaultDBTimeout)
}
