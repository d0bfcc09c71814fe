package controllers

import (
	"context"

	"fidexia/backend/session"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Gateway is where the account, email and payment backends plug in.
type Gateway interface {
	Authenticate(ctx context.Context, sessionID string, role session.Role) error
	VerifyEmail(ctx context.Context, sessionID, code string) error
	SubmitProject(ctx context.Context, sessionID string) error
	ConfirmInvestment(ctx context.Context, sessionID, project string, amount decimal.Decimal) error
}

// LogGateway accepts everything and records what it was asked to do.
type LogGateway struct {
	Log *zap.Logger
}

func (g LogGateway) Authenticate(_ context.Context, sessionID string, role session.Role) error {
	g.Log.Info("login accepted", zap.String("session_id", sessionID), zap.String("role", role.String()))
	return nil
}

func (g LogGateway) VerifyEmail(_ context.Context, sessionID, _ string) error {
	g.Log.Info("email verification accepted", zap.String("session_id", sessionID))
	return nil
}

func (g LogGateway) SubmitProject(_ context.Context, sessionID string) error {
	g.Log.Info("project submission accepted", zap.String("session_id", sessionID))
	return nil
}

func (g LogGateway) ConfirmInvestment(_ context.Context, sessionID, project string, amount decimal.Decimal) error {
	g.Log.Info("investment accepted",
		zap.String("session_id", sessionID),
		zap.String("project", project),
		zap.String("amount", amount.StringFixed(2)),
	)
	return nil
}
