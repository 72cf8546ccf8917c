package commands

import (
	"context"
	"fmt"
	"log/slog"

	"cast-dispatch/internal/domain/request"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/infra/outbox"
	"cast-dispatch/internal/infra/telemetry"
	"cast-dispatch/internal/pkg/clock"
	"cast-dispatch/internal/pkg/errs"
	"cast-dispatch/internal/usecase/queries"
	"cast-dispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AssignmentCommands interface {
	// Invite is an idempotent upsert: re-inviting the same cast resets the
	// prior response instead of creating a duplicate row.
	Invite(ctx context.Context, callRequestID, castID int64, note *string) (*queries.AssignmentView, error)
	// Unassign is the operator override; unknown ids are a no-op.
	Unassign(ctx context.Context, assignmentID int64) error
	// UpdateRequestStatus sets the status directly from the allow-list.
	UpdateRequestStatus(ctx context.Context, callRequestID int64, status string) error
}

type assignmentCommandsImpl struct {
	assignmentRepo  AssignmentRepository
	requestRepo     CallRequestRepository
	castRepo        CastRepository
	assignmentReads AssignmentReads
	requestReads    RequestReads
	gateway         NotificationGateway
	runner          *outbox.Runner
	pool            *pgxpool.Pool
	clock           clock.Clock
}

func NewAssignmentCommands(
	assignmentRepo AssignmentRepository,
	requestRepo CallRequestRepository,
	castRepo CastRepository,
	assignmentReads AssignmentReads,
	requestReads RequestReads,
	gateway NotificationGateway,
	runner *outbox.Runner,
	pool *pgxpool.Pool,
	clk clock.Clock,
) AssignmentCommands {
	return &assignmentCommandsImpl{
		assignmentRepo:  assignmentRepo,
		requestRepo:     requestRepo,
		castRepo:        castRepo,
		assignmentReads: assignmentReads,
		requestReads:    requestReads,
		gateway:         gateway,
		runner:          runner,
		pool:            pool,
		clock:           clk,
	}
}

func (c *assignmentCommandsImpl) Invite(ctx context.Context, callRequestID, castID int64, note *string) (*queries.AssignmentView, error) {
	reqView, err := c.requestReads.FindByID(ctx, callRequestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	queue := outbox.NewQueue()
	now := c.clock.Now()

	assignmentID, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (int64, error) {
		// 前の試行で積んだフックを持ち越さない
		queue.Reset()

		cast, err := c.castRepo.FindProfile(ctx, tx, castID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, errs.ErrCastNotFound
			}
			return 0, err
		}

		assign, err := c.assignmentRepo.Upsert(ctx, tx, callRequestID, castID, note, now)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return 0, errs.ErrRequestNotFound
			}
			return 0, err
		}

		if _, err := c.requestRepo.MarkAssignedIfPending(ctx, tx, callRequestID); err != nil {
			return 0, err
		}

		c.enqueueInvitePush(queue, cast, reqView, assign.ID(), assign.Note())
		return assign.ID(), nil
	})
	if err != nil {
		return nil, err
	}

	// State is durable; only now may anything leave the process.
	c.runner.RunAfterCommit(queue)
	telemetry.InvitesTotal.Inc()

	view, err := c.assignmentReads.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *assignmentCommandsImpl) enqueueInvitePush(queue *outbox.Queue, cast *CastProfile, reqView *queries.RequestView, assignmentID int64, note *string) {
	if cast.LineUserID == nil {
		slog.Info("invite push skipped: cast not linked", "cast_id", cast.ID, "assignment_id", assignmentID)
		return
	}

	noteText := "（なし）"
	if note != nil && *note != "" {
		noteText = *note
	}
	place := reqView.Place
	if place == "" {
		place = "（未指定）"
	}
	text := fmt.Sprintf("【新着招待】\nリクエスト #%d\n%s %s–%s\n場所: %s\nメッセージ: %s\n\n下のボタンで参加可否をご返信ください。",
		reqView.ID, reqView.Date, reqView.StartTime, reqView.EndTime, place, noteText)

	to := *cast.LineUserID
	queue.Add(func(ctx context.Context) {
		if err := c.gateway.Push(ctx, to, line.InviteMessage(text, assignmentID)); err != nil {
			telemetry.PushesSent.WithLabelValues("failure").Inc()
			slog.Warn("invite push failed", "assignment_id", assignmentID, "error", err)
			return
		}
		telemetry.PushesSent.WithLabelValues("success").Inc()
	})
}

func (c *assignmentCommandsImpl) Unassign(ctx context.Context, assignmentID int64) error {
	_, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		deleted, err := c.assignmentRepo.Delete(ctx, tx, assignmentID)
		if err != nil {
			return struct{}{}, err
		}
		if !deleted {
			slog.Info("unassign no-op: assignment absent", "assignment_id", assignmentID)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *assignmentCommandsImpl) UpdateRequestStatus(ctx context.Context, callRequestID int64, status string) error {
	st := request.Status(status)
	if !st.IsValid() {
		return errs.ErrInvalidRequestStatus
	}

	_, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		updated, err := c.requestRepo.UpdateStatus(ctx, tx, callRequestID, st)
		if err != nil {
			return struct{}{}, err
		}
		if !updated {
			return struct{}{}, errs.ErrRequestNotFound
		}
		return struct{}{}, nil
	})
	return err
}
