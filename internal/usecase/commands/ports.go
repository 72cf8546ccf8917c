package commands

import (
	"context"
	"time"

	"cast-dispatch/internal/domain/assignment"
	"cast-dispatch/internal/domain/match"
	"cast-dispatch/internal/domain/request"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/usecase/queries"
)

// Write-side ports. Implementations live in internal/infra.

// TxRunner executes fn inside one transaction with the usual retry policy.
// Webhook processing depends on this seam instead of the pool so its
// idempotency guards can be exercised against mocked repositories.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx db.DBTX) error) error
}

type AssignmentRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, callRequestID, castID int64, note *string, now time.Time) (*assignment.Assignment, error)
	Respond(ctx context.Context, tx db.DBTX, id int64, status assignment.Status, now time.Time) (bool, error)
	Delete(ctx context.Context, tx db.DBTX, id int64) (bool, error)
}

type CallRequestRepository interface {
	Exists(ctx context.Context, tx db.DBTX, id int64) (bool, error)
	MarkAssignedIfPending(ctx context.Context, tx db.DBTX, id int64) (bool, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id int64, status request.Status) (bool, error)
}

type CastRepository interface {
	FindProfile(ctx context.Context, tx db.DBTX, castID int64) (*CastProfile, error)
}

// CastProfile is the write-side snapshot of a cast used while inviting.
type CastProfile struct {
	ID         int64
	Nickname   string
	LineUserID *string
}

type MatchRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *match.Match) (int64, error)
	Extend(ctx context.Context, tx db.DBTX, id int64, addMinutes int32) (int32, bool, error)
	End(ctx context.Context, tx db.DBTX, id int64, now time.Time) (bool, error)
	Exists(ctx context.Context, tx db.DBTX, id int64) (bool, error)
}

type UserRepository interface {
	BindLineIdentity(ctx context.Context, tx db.DBTX, userID int64, lineUserID string, displayName *string, now time.Time) error
	UnbindLineIdentity(ctx context.Context, tx db.DBTX, lineUserID string) error
}

type LinkCodeRepository interface {
	Issue(ctx context.Context, tx db.DBTX, userID int64, code string, expiresAt time.Time) error
	Redeem(ctx context.Context, tx db.DBTX, code string, now time.Time) (int64, bool, error)
}

// Read ports used by commands for validation and read-after-write.

type AssignmentReads interface {
	FindByID(ctx context.Context, id int64) (*queries.AssignmentView, error)
}

type MatchReads interface {
	FindByID(ctx context.Context, id int64) (*queries.MatchView, error)
}

type RequestReads interface {
	FindByID(ctx context.Context, id int64) (*queries.RequestView, error)
}

// NotificationGateway sends outbound messages. Implementations never fail a
// transaction: a send error is logged by the caller and dropped.
type NotificationGateway interface {
	Push(ctx context.Context, to string, messages ...line.Message) error
	Reply(ctx context.Context, replyToken string, messages ...line.Message) error
}

// ReminderScheduler registers a one-shot deferred reminder.
type ReminderScheduler interface {
	Schedule(ctx context.Context, matchID int64, fireAt time.Time) error
}
