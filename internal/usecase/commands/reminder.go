package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/infra/telemetry"
	"cast-dispatch/internal/pkg/errs"
)

// ReminderCommands fires the end-of-match reminder: a heads-up to the cast
// and an extension prompt to the requester.
type ReminderCommands interface {
	HandleReminder(ctx context.Context, matchID int64) error
}

type reminderCommandsImpl struct {
	matchReads MatchReads
	gateway    NotificationGateway
}

func NewReminderCommands(matchReads MatchReads, gateway NotificationGateway) ReminderCommands {
	return &reminderCommandsImpl{matchReads: matchReads, gateway: gateway}
}

func (c *reminderCommandsImpl) HandleReminder(ctx context.Context, matchID int64) error {
	view, err := c.matchReads.FindByID(ctx, matchID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// 行が消えたリマインダーは黙って破棄する
			telemetry.RemindersStale.Inc()
			slog.Info("reminder for missing match dropped", "match_id", matchID)
			return nil
		}
		// 読み取り失敗は再配送に回す
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.Status != "started" {
		telemetry.RemindersStale.Inc()
		slog.Info("reminder for finished match dropped", "match_id", matchID, "status", view.Status)
		return nil
	}

	endsAt := view.StartedAt.Add(time.Duration(view.DurationMinutes) * time.Minute)

	if view.CastLineUserID != nil {
		text := fmt.Sprintf("まもなく終了予定です（%s 終了）。延長の希望があればお客様にご確認ください。",
			endsAt.Format("15:04"))
		if err := c.gateway.Push(ctx, *view.CastLineUserID, line.TextMessage(text)); err != nil {
			telemetry.PushesSent.WithLabelValues("failure").Inc()
			slog.Warn("cast reminder push failed", "match_id", matchID, "error", err)
		} else {
			telemetry.PushesSent.WithLabelValues("success").Inc()
		}
	}

	if view.RequesterLineID != nil {
		prompt := line.ExtendPromptMessage(
			"まもなく終了予定です",
			fmt.Sprintf("%s に終了予定です。延長しますか？", endsAt.Format("15:04")),
			matchID)
		if err := c.gateway.Push(ctx, *view.RequesterLineID, prompt); err != nil {
			telemetry.PushesSent.WithLabelValues("failure").Inc()
			slog.Warn("requester reminder push failed", "match_id", matchID, "error", err)
		} else {
			telemetry.PushesSent.WithLabelValues("success").Inc()
		}
	}

	telemetry.RemindersFired.Inc()
	return nil
}
