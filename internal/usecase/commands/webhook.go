package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cast-dispatch/internal/domain/assignment"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/infra/telemetry"
	"cast-dispatch/internal/pkg/clock"
	"cast-dispatch/internal/pkg/errs"
)

var linkCodePattern = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)

// WebhookCommands applies inbound channel events. Processing is best-effort
// per event: a bad event is logged and dropped so the rest of the batch and
// the 200 response are unaffected.
type WebhookCommands interface {
	ProcessEvents(ctx context.Context, events []line.Event)
}

type webhookCommandsImpl struct {
	assignmentRepo  AssignmentRepository
	userRepo        UserRepository
	linkCodeRepo    LinkCodeRepository
	assignmentReads AssignmentReads
	matchCmds       MatchCommands
	gateway         NotificationGateway
	txRunner        TxRunner
	clock           clock.Clock
}

func NewWebhookCommands(
	assignmentRepo AssignmentRepository,
	userRepo UserRepository,
	linkCodeRepo LinkCodeRepository,
	assignmentReads AssignmentReads,
	matchCmds MatchCommands,
	gateway NotificationGateway,
	txRunner TxRunner,
	clk clock.Clock,
) WebhookCommands {
	return &webhookCommandsImpl{
		assignmentRepo:  assignmentRepo,
		userRepo:        userRepo,
		linkCodeRepo:    linkCodeRepo,
		assignmentReads: assignmentReads,
		matchCmds:       matchCmds,
		gateway:         gateway,
		txRunner:        txRunner,
		clock:           clk,
	}
}

func (c *webhookCommandsImpl) ProcessEvents(ctx context.Context, events []line.Event) {
	for i := range events {
		c.processOne(ctx, &events[i])
	}
}

func (c *webhookCommandsImpl) processOne(ctx context.Context, ev *line.Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while processing webhook event", "type", ev.Type, "recovered", r)
		}
	}()

	switch ev.Type {
	case "follow":
		c.handleFollow(ctx, ev)
	case "unfollow":
		c.handleUnfollow(ctx, ev)
	case "message":
		c.handleMessage(ctx, ev)
	case "postback":
		c.handlePostback(ctx, ev)
	default:
		telemetry.WebhookEvents.WithLabelValues(ev.Type, telemetry.OutcomeSkipped).Inc()
	}
}

func (c *webhookCommandsImpl) handleFollow(ctx context.Context, ev *line.Event) {
	telemetry.WebhookEvents.WithLabelValues("follow", telemetry.OutcomeApplied).Inc()
	c.reply(ctx, ev.ReplyToken,
		line.TextMessage("友だち追加ありがとうございます。\nアカウント連携コード（英数字6〜12桁）をこのトークに送信してください。"))
}

func (c *webhookCommandsImpl) handleUnfollow(ctx context.Context, ev *line.Event) {
	if ev.Source.UserID == "" {
		telemetry.WebhookEvents.WithLabelValues("unfollow", telemetry.OutcomeSkipped).Inc()
		return
	}
	err := c.txRunner.InTx(ctx, func(tx db.DBTX) error {
		return c.userRepo.UnbindLineIdentity(ctx, tx, ev.Source.UserID)
	})
	if err != nil {
		slog.Error("failed to unbind on unfollow", "line_user_id", ev.Source.UserID, "error", err)
		return
	}
	telemetry.WebhookEvents.WithLabelValues("unfollow", telemetry.OutcomeApplied).Inc()
}

func (c *webhookCommandsImpl) handleMessage(ctx context.Context, ev *line.Event) {
	if ev.Message == nil || ev.Message.Type != "text" || ev.Source.UserID == "" {
		telemetry.WebhookEvents.WithLabelValues("message", telemetry.OutcomeSkipped).Inc()
		return
	}

	code := strings.ToUpper(strings.TrimSpace(ev.Message.Text))
	if !linkCodePattern.MatchString(code) {
		// 連携コード以外のテキストには応答しない
		telemetry.WebhookEvents.WithLabelValues("message", telemetry.OutcomeSkipped).Inc()
		return
	}

	now := c.clock.Now()
	lineUserID := ev.Source.UserID

	var redeemed bool
	err := c.txRunner.InTx(ctx, func(tx db.DBTX) error {
		redeemed = false
		userID, ok, err := c.linkCodeRepo.Redeem(ctx, tx, code, now)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := c.userRepo.BindLineIdentity(ctx, tx, userID, lineUserID, nil, now); err != nil {
			return err
		}
		redeemed = true
		return nil
	})
	if err != nil {
		slog.Error("link code redemption failed", "error", err)
		c.reply(ctx, ev.ReplyToken, line.TextMessage("連携処理に失敗しました。時間をおいて再度お試しください。"))
		return
	}

	if !redeemed {
		telemetry.WebhookEvents.WithLabelValues("message", telemetry.OutcomeRejected).Inc()
		c.reply(ctx, ev.ReplyToken, line.TextMessage("連携コードが無効か期限切れです。新しいコードを発行してください。"))
		return
	}

	telemetry.WebhookEvents.WithLabelValues("message", telemetry.OutcomeApplied).Inc()
	c.reply(ctx, ev.ReplyToken, line.TextMessage("アカウント連携が完了しました。"))
}

func (c *webhookCommandsImpl) handlePostback(ctx context.Context, ev *line.Event) {
	if ev.Postback == nil {
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeSkipped).Inc()
		return
	}

	values, err := url.ParseQuery(ev.Postback.Data)
	if err != nil {
		slog.Warn("unparseable postback data", "data", ev.Postback.Data, "error", err)
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
		return
	}

	switch action := values.Get("action"); action {
	case "accept", "decline":
		c.handleInviteResponse(ctx, ev, values, assignment.Response(action))
	case "extend":
		c.handleExtend(ctx, ev, values)
	default:
		slog.Warn("unknown postback action", "action", action)
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
	}
}

func (c *webhookCommandsImpl) handleInviteResponse(ctx context.Context, ev *line.Event, values url.Values, resp assignment.Response) {
	assignID, err := strconv.ParseInt(values.Get("assign_id"), 10, 64)
	if err != nil {
		slog.Warn("postback missing assign_id", "data", ev.Postback.Data)
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
		return
	}

	view, err := c.assignmentReads.FindByID(ctx, assignID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("response for unknown assignment", "assignment_id", assignID)
			telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
			return
		}
		slog.Error("failed to load assignment for response", "assignment_id", assignID, "error", err)
		return
	}

	// 本人以外からの応答は黙って破棄する
	if view.CastLineUserID == nil || *view.CastLineUserID != ev.Source.UserID {
		slog.Warn("response from unexpected sender",
			"assignment_id", assignID, "line_user_id", ev.Source.UserID)
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
		return
	}

	if !resp.IsValid() {
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
		return
	}
	status := resp.ToStatus()

	now := c.clock.Now()
	var applied bool
	err = c.txRunner.InTx(ctx, func(tx db.DBTX) error {
		applied, err = c.assignmentRepo.Respond(ctx, tx, assignID, status, now)
		return err
	})
	if err != nil {
		slog.Error("failed to record invite response", "assignment_id", assignID, "error", err)
		return
	}

	if !applied {
		// First answer wins; repeat taps only get a reminder of that.
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeDuplicate).Inc()
		c.reply(ctx, ev.ReplyToken, line.TextMessage("この招待にはすでに回答済みです。"))
		return
	}

	telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeApplied).Inc()
	ack := "辞退を受け付けました。またの機会にお願いします。"
	if status == assignment.StatusAccepted {
		ack = fmt.Sprintf("参加を受け付けました！\n%s %s–%s にお待ちしています。",
			view.RequestDate, view.RequestStart, view.RequestEnd)
	}
	c.reply(ctx, ev.ReplyToken, line.TextMessage(ack))
}

func (c *webhookCommandsImpl) handleExtend(ctx context.Context, ev *line.Event, values url.Values) {
	matchID, err := strconv.ParseInt(values.Get("match_id"), 10, 64)
	if err != nil {
		slog.Warn("postback missing match_id", "data", ev.Postback.Data)
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
		return
	}
	hours, err := strconv.Atoi(values.Get("hours"))
	if err != nil {
		slog.Warn("postback missing hours", "data", ev.Postback.Data)
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
		return
	}

	view, err := c.matchCmds.Extend(ctx, matchID, hours)
	switch {
	case err == nil:
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeApplied).Inc()
		c.reply(ctx, ev.ReplyToken, line.TextMessage(
			fmt.Sprintf("%d時間延長しました。終了予定は %s です。",
				hours, view.StartedAt.Add(minutes(view.DurationMinutes)).Format("15:04"))))
	case errs.Is(err, errs.ErrMatchAlreadyOver):
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeDuplicate).Inc()
		c.reply(ctx, ev.ReplyToken, line.TextMessage("このマッチはすでに終了しています。"))
	case errs.Is(err, errs.ErrMatchNotFound), errs.Is(err, errs.ErrInvalidExtension):
		telemetry.WebhookEvents.WithLabelValues("postback", telemetry.OutcomeRejected).Inc()
	default:
		slog.Error("failed to extend match from postback", "match_id", matchID, "error", err)
	}
}

func (c *webhookCommandsImpl) reply(ctx context.Context, replyToken string, messages ...line.Message) {
	if replyToken == "" {
		return
	}
	if err := c.gateway.Reply(ctx, replyToken, messages...); err != nil {
		slog.Warn("webhook reply failed", "error", err)
	}
}

func minutes(m int32) time.Duration {
	return time.Duration(m) * time.Minute
}
