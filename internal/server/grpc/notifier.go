package grpc

import (
	"context"

	"github.com/dmitrijs2005/presskit/internal/logging"
)

// TokenKind names what a one-time token is for.
type TokenKind string

const (
	TokenPasswordReset TokenKind = "password_reset"
	TokenVerification  TokenKind = "verification"
)

// TokenNotifier delivers a plaintext one-time token to the account's email.
type TokenNotifier interface {
	Notify(ctx context.Context, email string, kind TokenKind, token string) error
}

// LogNotifier records that a token was issued without delivering it. The
// token itself is never logged.
// TODO: add an SMTP notifier and select it from config.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(l logging.Logger) *LogNotifier {
	return &LogNotifier{logger: l.With("module", "token_notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, email string, kind TokenKind, _ string) error {
	n.logger.Info(ctx, "token issued, no delivery configured", "email", email, "kind", string(kind))
	return nil
}
