//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cast-dispatch/internal/handler/api"
	reqdto "cast-dispatch/internal/handler/dto/request"
	resdto "cast-dispatch/internal/handler/dto/response"
	"cast-dispatch/internal/pkg/errs"
	"cast-dispatch/tests/common/builder"
	"cast-dispatch/tests/common/httptest"
	"cast-dispatch/tests/common/testutil"
	commandsmock "cast-dispatch/tests/mock/commands"
	queriesmock "cast-dispatch/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMatchCommands
	mockQueries  *queriesmock.MockMatchQueries
	handler      *api.MatchHandler
}

func (s *MatchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMatchQueries(s.mockCtrl)
	s.handler = api.NewMatchHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", int64(100))
		c.Set("user_role", "admin")
		c.Next()
	}

	s.router.POST("/matches", authMiddleware, s.handler.Start)
	s.router.GET("/matches", authMiddleware, s.handler.List)
	s.router.GET("/matches/active", authMiddleware, s.handler.ActiveByCast)
	s.router.GET("/matches/:id", authMiddleware, s.handler.Get)
	s.router.POST("/matches/:id/extend", authMiddleware, s.handler.Extend)
	s.router.POST("/matches/:id/end", authMiddleware, s.handler.End)
}

func (s *MatchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}

func (s *MatchHandlerTestSuite) TestStart() {
	url := "/matches"
	reqBody := reqdto.StartMatchRequest{
		CallRequestID:   1,
		CastID:          3,
		DurationMinutes: 120,
	}
	returnView := builder.NewMatchViewBuilder().Build()

	s.Run("success: 201 Created でマッチを返す", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.True(body.ScheduledEndAt.Equal(returnView.StartedAt.Add(2 * time.Hour)))
	})

	s.Run("error: 必須フィールド欠落は 400", func() {
		cases := []struct {
			name  string
			field string
		}{
			{name: "missing call_request_id", field: "call_request_id"},
			{name: "missing cast_id", field: "cast_id"},
			{name: "missing duration_minutes", field: "duration_minutes"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: ユースケースエラーをステータスに写像する", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "invalid duration", commandsError: errs.ErrInvalidDuration, expectedStatus: http.StatusUnprocessableEntity},
			{name: "request not found", commandsError: errs.ErrRequestNotFound, expectedStatus: http.StatusNotFound},
			{name: "cast not found", commandsError: errs.ErrCastNotFound, expectedStatus: http.StatusNotFound},
			{name: "internal", commandsError: errs.New("boom"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 未認証は 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *MatchHandlerTestSuite) TestExtend() {
	url := "/matches/7/extend"
	reqBody := reqdto.ExtendMatchRequest{Hours: 1}

	s.Run("success: 200 で延長後のマッチを返す", func() {
		returnView := builder.NewMatchViewBuilder().WithDuration(180).Build()
		s.mockCommands.EXPECT().Extend(gomock.Any(), int64(7), 1).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int32(180), body.DurationMinutes)
	})

	s.Run("error: 終了済みマッチは 409", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), int64(7), 1).
			Return(nil, errs.ErrMatchAlreadyOver).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already ended")
	})

	s.Run("error: 不正な延長時間は 422", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), int64(7), 3).
			Return(nil, errs.ErrInvalidExtension).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ExtendMatchRequest{Hours: 3}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 不正な ID は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/matches/abc/extend", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *MatchHandlerTestSuite) TestEnd() {
	url := "/matches/7/end"

	s.Run("success: 200 で終了済みマッチを返す", func() {
		returnView := builder.NewMatchViewBuilder().WithStatus("ended").Build()
		s.mockCommands.EXPECT().End(gomock.Any(), int64(7)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ended", body.Status)
	})

	s.Run("error: 存在しないマッチは 404", func() {
		s.mockCommands.EXPECT().End(gomock.Any(), int64(7)).
			Return(nil, errs.ErrMatchNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 二重終了は 409", func() {
		s.mockCommands.EXPECT().End(gomock.Any(), int64(7)).
			Return(nil, errs.ErrMatchAlreadyOver).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *MatchHandlerTestSuite) TestActiveByCast() {
	s.Run("success: 稼働中マッチを返す", func() {
		returnView := builder.NewMatchViewBuilder().Build()
		s.mockQueries.EXPECT().ActiveByCast(gomock.Any(), int64(3)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/matches/active?cast_id=3", nil, "bearer-token")

		var body resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("success: 稼働なしは 204", func() {
		s.mockQueries.EXPECT().ActiveByCast(gomock.Any(), int64(3)).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/matches/active?cast_id=3", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: cast_id 欠落は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/matches/active", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
