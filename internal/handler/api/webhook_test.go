//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cast-dispatch/internal/handler/api"
	"cast-dispatch/internal/infra/line"
	"cast-dispatch/internal/pkg/config"
	"cast-dispatch/tests/common/httptest"
	commandsmock "cast-dispatch/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testChannelSecret = "test-channel-secret"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)

	handler := api.NewWebhookHandler(s.mockCommands, config.LineConfig{ChannelSecret: testChannelSecret})
	s.router.POST("/api/line/webhook", handler.Handle)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) postSigned(body []byte) *map[string]any {
	headers := map[string]string{
		"Content-Type":     "application/json",
		"X-Line-Signature": line.SignBody(testChannelSecret, body),
	}
	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/line/webhook", body, headers)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func (s *WebhookHandlerTestSuite) TestHandle() {
	s.Run("success: 正しい署名なら 200 {ok:true}", func() {
		body := []byte(`{"destination":"xxx","events":[{"type":"follow","replyToken":"r1","source":{"type":"user","userId":"U1"}}]}`)

		s.mockCommands.EXPECT().ProcessEvents(gomock.Any(), gomock.Len(1)).Times(1)

		resp := s.postSigned(body)
		s.Equal(true, (*resp)["ok"])
	})

	s.Run("success: イベント0件でも 200", func() {
		body := []byte(`{"destination":"xxx","events":[]}`)

		s.mockCommands.EXPECT().ProcessEvents(gomock.Any(), gomock.Len(0)).Times(1)

		resp := s.postSigned(body)
		s.Equal(true, (*resp)["ok"])
	})

	s.Run("error: 署名不一致は 401 でイベント処理なし", func() {
		body := []byte(`{"destination":"xxx","events":[]}`)
		headers := map[string]string{
			"Content-Type":     "application/json",
			"X-Line-Signature": "invalid-signature",
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/line/webhook", body, headers)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 署名ヘッダ欠落は 401", func() {
		body := []byte(`{"destination":"xxx","events":[]}`)
		headers := map[string]string{"Content-Type": "application/json"}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/line/webhook", body, headers)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 署名は正しいが JSON が壊れている場合は 400", func() {
		body := []byte(`{not-json`)
		headers := map[string]string{
			"Content-Type":     "application/json",
			"X-Line-Signature": line.SignBody(testChannelSecret, body),
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/line/webhook", body, headers)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
