package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cast-dispatch/internal/domain/match"
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

// 終了リマインダーはマッチ終了予定の10分前に届く
const reminderLeadMinutes = 10

type StartMatchParams struct {
	CallRequestID   int64
	AssignmentID    *int64
	CastID          int64
	DurationMinutes int32
	Latitude        *float64
	Longitude       *float64
}

type MatchCommands interface {
	Start(ctx context.Context, p StartMatchParams) (*queries.MatchView, error)
	// Extend adds 1 or 2 hours to a started match. The reminder keeps its
	// original fire time; the prompt it carries stays useful either way.
	Extend(ctx context.Context, matchID int64, hours int) (*queries.MatchView, error)
	End(ctx context.Context, matchID int64) (*queries.MatchView, error)
}

type matchCommandsImpl struct {
	matchRepo   MatchRepository
	castRepo    CastRepository
	matchReads  MatchReads
	gateway     NotificationGateway
	scheduler   ReminderScheduler
	runner      *outbox.Runner
	pool        *pgxpool.Pool
	clock       clock.Clock
	adminUserID string
}

func NewMatchCommands(
	matchRepo MatchRepository,
	castRepo CastRepository,
	matchReads MatchReads,
	gateway NotificationGateway,
	scheduler ReminderScheduler,
	runner *outbox.Runner,
	pool *pgxpool.Pool,
	clk clock.Clock,
	adminUserID string,
) MatchCommands {
	return &matchCommandsImpl{
		matchRepo:   matchRepo,
		castRepo:    castRepo,
		matchReads:  matchReads,
		gateway:     gateway,
		scheduler:   scheduler,
		runner:      runner,
		pool:        pool,
		clock:       clk,
		adminUserID: adminUserID,
	}
}

func (c *matchCommandsImpl) Start(ctx context.Context, p StartMatchParams) (*queries.MatchView, error) {
	var geo *match.Geo
	if p.Latitude != nil && p.Longitude != nil {
		g, err := match.NewGeo(*p.Latitude, *p.Longitude)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		geo = &g
	}

	now := c.clock.Now()
	m, err := match.NewMatch(p.CallRequestID, p.AssignmentID, p.CastID, p.DurationMinutes, geo, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDuration)
	}

	queue := outbox.NewQueue()

	matchID, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (int64, error) {
		// 前の試行で積んだフックを持ち越さない
		queue.Reset()

		cast, err := c.castRepo.FindProfile(ctx, tx, p.CastID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, errs.ErrCastNotFound
			}
			return 0, err
		}

		id, err := c.matchRepo.Create(ctx, tx, m)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return 0, errs.ErrRequestNotFound
			}
			return 0, err
		}

		c.enqueueAdminNotice(queue, id,
			fmt.Sprintf("マッチ #%d を開始しました（キャスト: %s / %d分）", id, cast.Nickname, p.DurationMinutes))
		return id, nil
	})
	if err != nil {
		return nil, err
	}

	c.runner.RunAfterCommit(queue)
	telemetry.MatchesStarted.Inc()

	fireAt := m.EndsAt().Add(-reminderLeadMinutes * time.Minute)
	if err := c.scheduler.Schedule(ctx, matchID, fireAt); err != nil {
		// マッチは成立済みなのでリマインダー登録失敗は致命ではない
		slog.Error("failed to schedule end reminder", "match_id", matchID, "error", err)
	}

	view, err := c.matchReads.FindByID(ctx, matchID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// enqueueAdminNotice queues a lifecycle push to the admin channel. No admin
// user configured means no notice.
func (c *matchCommandsImpl) enqueueAdminNotice(queue *outbox.Queue, matchID int64, text string) {
	if c.adminUserID == "" {
		return
	}
	queue.Add(func(ctx context.Context) {
		if err := c.gateway.Push(ctx, c.adminUserID, line.TextMessage(text)); err != nil {
			telemetry.PushesSent.WithLabelValues("failure").Inc()
			slog.Warn("admin match notice failed", "match_id", matchID, "error", err)
			return
		}
		telemetry.PushesSent.WithLabelValues("success").Inc()
	})
}

func (c *matchCommandsImpl) Extend(ctx context.Context, matchID int64, hours int) (*queries.MatchView, error) {
	if !match.IsAllowedExtension(int32(hours)) {
		return nil, errs.ErrInvalidExtension
	}

	queue := outbox.NewQueue()

	_, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		queue.Reset()

		newDuration, applied, err := c.matchRepo.Extend(ctx, tx, matchID, int32(hours*60))
		if err != nil {
			return struct{}{}, err
		}
		if !applied {
			return struct{}{}, c.classifyStale(ctx, tx, matchID)
		}
		slog.Info("match extended", "match_id", matchID, "hours", hours, "duration_minutes", newDuration)
		c.enqueueAdminNotice(queue, matchID,
			fmt.Sprintf("マッチ #%d を%d時間延長しました（合計 %d分）", matchID, hours, newDuration))
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	c.runner.RunAfterCommit(queue)
	telemetry.MatchesExtended.Inc()

	view, err := c.matchReads.FindByID(ctx, matchID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *matchCommandsImpl) End(ctx context.Context, matchID int64) (*queries.MatchView, error) {
	now := c.clock.Now()

	queue := outbox.NewQueue()

	_, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		queue.Reset()

		applied, err := c.matchRepo.End(ctx, tx, matchID, now)
		if err != nil {
			return struct{}{}, err
		}
		if !applied {
			return struct{}{}, c.classifyStale(ctx, tx, matchID)
		}
		c.enqueueAdminNotice(queue, matchID, fmt.Sprintf("マッチ #%d が終了しました", matchID))
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	c.runner.RunAfterCommit(queue)
	telemetry.MatchesEnded.Inc()

	view, err := c.matchReads.FindByID(ctx, matchID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// classifyStale distinguishes a missing match from one already ended after a
// guarded update touched no rows.
func (c *matchCommandsImpl) classifyStale(ctx context.Context, tx db.DBTX, matchID int64) error {
	exists, err := c.matchRepo.Exists(ctx, tx, matchID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrMatchNotFound
	}
	return errs.ErrMatchAlreadyOver
}
