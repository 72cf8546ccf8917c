//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"cast-dispatch/internal/domain/assignment"
	"cast-dispatch/internal/infra"
	"cast-dispatch/internal/infra/db"
	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/pkg/clock"
	"cast-dispatch/internal/pkg/errs"
	"cast-dispatch/internal/usecase/commands"
	"cast-dispatch/tests/common/builder"
	commandsmock "cast-dispatch/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// passthroughTxRunner はトランザクションを張らず fn をそのまま実行する
type passthroughTxRunner struct{}

func (passthroughTxRunner) InTx(ctx context.Context, fn func(tx db.DBTX) error) error {
	return fn(nil)
}

type WebhookCommandsTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	assignmentRepo  *commandsmock.MockAssignmentRepository
	userRepo        *commandsmock.MockUserRepository
	linkCodeRepo    *commandsmock.MockLinkCodeRepository
	assignmentReads *commandsmock.MockAssignmentReads
	matchCmds       *commandsmock.MockMatchCommands
	gateway         *commandsmock.MockNotificationGateway
	clk             *clock.MockClock
	cmd             commands.WebhookCommands
}

func (s *WebhookCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.assignmentRepo = commandsmock.NewMockAssignmentRepository(s.ctrl)
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.linkCodeRepo = commandsmock.NewMockLinkCodeRepository(s.ctrl)
	s.assignmentReads = commandsmock.NewMockAssignmentReads(s.ctrl)
	s.matchCmds = commandsmock.NewMockMatchCommands(s.ctrl)
	s.gateway = commandsmock.NewMockNotificationGateway(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC))
	s.cmd = commands.NewWebhookCommands(
		s.assignmentRepo, s.userRepo, s.linkCodeRepo, s.assignmentReads,
		s.matchCmds, s.gateway, passthroughTxRunner{}, s.clk,
	)
}

func (s *WebhookCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWebhookCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookCommandsTestSuite))
}

func postbackEvent(userID, data string) line.Event {
	return line.Event{
		Type:       "postback",
		ReplyToken: "rtoken-1",
		Source:     line.EventSource{Type: "user", UserID: userID},
		Postback:   &line.Postback{Data: data},
	}
}

func textMessageEvent(userID, text string) line.Event {
	return line.Event{
		Type:       "message",
		ReplyToken: "rtoken-1",
		Source:     line.EventSource{Type: "user", UserID: userID},
		Message:    &line.EventMessage{ID: "m1", Type: "text", Text: text},
	}
}

// expectReply は reply の本文を捕捉して検証する
func (s *WebhookCommandsTestSuite) expectReply(contains string) {
	s.gateway.EXPECT().
		Reply(gomock.Any(), "rtoken-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msgs ...line.Message) error {
			s.Require().Len(msgs, 1)
			s.Contains(msgs[0].Text, contains)
			return nil
		})
}

func (s *WebhookCommandsTestSuite) TestInviteResponse() {
	ctx := context.Background()
	castLineID := "U1234567890abcdef"
	now := s.clk.Now()

	s.Run("承諾は respondedAt 未設定の行にだけ適用され時間帯つきで ack する", func() {
		view := builder.NewAssignmentViewBuilder().Build()
		s.assignmentReads.EXPECT().FindByID(gomock.Any(), int64(5)).Return(view, nil)
		s.assignmentRepo.EXPECT().
			Respond(gomock.Any(), gomock.Nil(), int64(5), assignment.StatusAccepted, now).
			Return(true, nil)
		s.expectReply("19:00")

		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "assign_id=5&action=accept")})
	})

	s.Run("辞退も同じガード経由で記録される", func() {
		view := builder.NewAssignmentViewBuilder().Build()
		s.assignmentReads.EXPECT().FindByID(gomock.Any(), int64(5)).Return(view, nil)
		s.assignmentRepo.EXPECT().
			Respond(gomock.Any(), gomock.Nil(), int64(5), assignment.StatusDeclined, now).
			Return(true, nil)
		s.expectReply("辞退")

		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "assign_id=5&action=decline")})
	})

	s.Run("二重応答はガードに弾かれ回答済みの案内だけ返す", func() {
		view := builder.NewAssignmentViewBuilder().Build()
		s.assignmentReads.EXPECT().FindByID(gomock.Any(), int64(5)).Return(view, nil)
		s.assignmentRepo.EXPECT().
			Respond(gomock.Any(), gomock.Nil(), int64(5), assignment.StatusDeclined, now).
			Return(false, nil)
		s.expectReply("すでに回答済み")

		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "assign_id=5&action=decline")})
	})

	s.Run("招待されたキャスト以外からの応答は黙って破棄する", func() {
		view := builder.NewAssignmentViewBuilder().Build()
		s.assignmentReads.EXPECT().FindByID(gomock.Any(), int64(5)).Return(view, nil)
		// Respond も reply も呼ばれない

		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent("Uimpostor00000000", "assign_id=5&action=accept")})
	})

	s.Run("未連携キャスト宛の招待への応答も破棄する", func() {
		view := builder.NewAssignmentViewBuilder().WithCastLineUserID(nil).Build()
		s.assignmentReads.EXPECT().FindByID(gomock.Any(), int64(5)).Return(view, nil)

		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "assign_id=5&action=accept")})
	})

	s.Run("存在しない assignment への応答は破棄する", func() {
		s.assignmentReads.EXPECT().
			FindByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("assignment not found", nil, infra.KindNotFound))

		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "assign_id=404&action=accept")})
	})

	s.Run("assign_id が欠けた postback は破棄する", func() {
		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "action=accept")})
	})
}

func (s *WebhookCommandsTestSuite) TestLinkCode() {
	ctx := context.Background()
	lineID := "Unewcomer12345678"
	now := s.clk.Now()

	s.Run("有効なコードは消込と連携を同一トランザクションで行う", func() {
		s.linkCodeRepo.EXPECT().
			Redeem(gomock.Any(), gomock.Nil(), "ABC123", now).
			Return(int64(42), true, nil)
		s.userRepo.EXPECT().
			BindLineIdentity(gomock.Any(), gomock.Nil(), int64(42), lineID, gomock.Nil(), now).
			Return(nil)
		s.expectReply("連携が完了")

		// 小文字や前後の空白は正規化される
		s.cmd.ProcessEvents(ctx, []line.Event{textMessageEvent(lineID, " abc123 ")})
	})

	s.Run("無効or期限切れコードは連携せず案内だけ返す", func() {
		s.linkCodeRepo.EXPECT().
			Redeem(gomock.Any(), gomock.Nil(), "EXPIRED1", now).
			Return(int64(0), false, nil)
		s.expectReply("無効か期限切れ")

		s.cmd.ProcessEvents(ctx, []line.Event{textMessageEvent(lineID, "EXPIRED1")})
	})

	s.Run("コード形式でないテキストには応答しない", func() {
		s.cmd.ProcessEvents(ctx, []line.Event{textMessageEvent(lineID, "こんにちは、今日は空いていますか？")})
	})

	s.Run("長すぎる英数字列もコードとして扱わない", func() {
		s.cmd.ProcessEvents(ctx, []line.Event{textMessageEvent(lineID, strings.Repeat("A", 13))})
	})
}

func (s *WebhookCommandsTestSuite) TestFollowLifecycle() {
	ctx := context.Background()

	s.Run("follow には連携コードの案内を返す", func() {
		s.expectReply("連携コード")

		s.cmd.ProcessEvents(ctx, []line.Event{{
			Type:       "follow",
			ReplyToken: "rtoken-1",
			Source:     line.EventSource{Type: "user", UserID: "Ufollower00000001"},
		}})
	})

	s.Run("unfollow は連携を解除する", func() {
		s.userRepo.EXPECT().
			UnbindLineIdentity(gomock.Any(), gomock.Nil(), "Uleaver0000000001").
			Return(nil)

		s.cmd.ProcessEvents(ctx, []line.Event{{
			Type:   "unfollow",
			Source: line.EventSource{Type: "user", UserID: "Uleaver0000000001"},
		}})
	})
}

func (s *WebhookCommandsTestSuite) TestExtendPostback() {
	ctx := context.Background()
	castLineID := "U1234567890abcdef"

	s.Run("延長成功は新しい終了予定時刻を返信する", func() {
		view := builder.NewMatchViewBuilder().WithDuration(180).Build()
		s.matchCmds.EXPECT().Extend(gomock.Any(), int64(7), 1).Return(view, nil)
		s.expectReply("21:00")

		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "action=extend&hours=1&match_id=7")})
	})

	s.Run("終了済みマッチの延長は終了済みの案内を返す", func() {
		s.matchCmds.EXPECT().
			Extend(gomock.Any(), int64(7), 1).
			Return(nil, errs.ErrMatchAlreadyOver)
		s.expectReply("すでに終了")

		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "action=extend&hours=1&match_id=7")})
	})

	s.Run("不明なアクションは破棄する", func() {
		s.cmd.ProcessEvents(ctx, []line.Event{postbackEvent(castLineID, "action=explode&match_id=7")})
	})

	s.Run("1イベントの失敗が後続イベントを止めない", func() {
		s.matchCmds.EXPECT().
			Extend(gomock.Any(), int64(7), 1).
			Return(nil, errs.ErrMatchNotFound)
		s.expectReply("連携コード")

		s.cmd.ProcessEvents(ctx, []line.Event{
			postbackEvent(castLineID, "action=extend&hours=1&match_id=7"),
			{Type: "follow", ReplyToken: "rtoken-1", Source: line.EventSource{Type: "user", UserID: "Ufollower00000001"}},
		})
	})
}
