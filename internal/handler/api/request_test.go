//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cast-dispatch/internal/handler/api"
	reqdto "cast-dispatch/internal/handler/dto/request"
	resdto "cast-dispatch/internal/handler/dto/response"
	"cast-dispatch/internal/pkg/errs"
	"cast-dispatch/internal/usecase/queries"
	"cast-dispatch/tests/common/builder"
	"cast-dispatch/tests/common/httptest"
	commandsmock "cast-dispatch/tests/mock/commands"
	queriesmock "cast-dispatch/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCtrl           *gomock.Controller
	mockAssignmentCmds *commandsmock.MockAssignmentCommands
	mockRequestQueries *queriesmock.MockRequestQueries
	mockCandidates     *queriesmock.MockCandidateQueries
	mockAssignQueries  *queriesmock.MockAssignmentQueries
	requestHandler     *api.RequestHandler
	assignmentHandler  *api.AssignmentHandler
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAssignmentCmds = commandsmock.NewMockAssignmentCommands(s.mockCtrl)
	s.mockRequestQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.mockCandidates = queriesmock.NewMockCandidateQueries(s.mockCtrl)
	s.mockAssignQueries = queriesmock.NewMockAssignmentQueries(s.mockCtrl)

	s.requestHandler = api.NewRequestHandler(s.mockAssignmentCmds, s.mockRequestQueries, s.mockCandidates)
	s.assignmentHandler = api.NewAssignmentHandler(s.mockAssignmentCmds, s.mockAssignQueries)

	s.router.GET("/admin/requests", s.requestHandler.List)
	s.router.GET("/admin/requests/:id", s.requestHandler.Get)
	s.router.PATCH("/admin/requests/:id/status", s.requestHandler.UpdateStatus)
	s.router.GET("/admin/requests/:id/candidates", s.requestHandler.Candidates)
	s.router.GET("/admin/candidates", s.requestHandler.CandidatesByWindow)
	s.router.POST("/admin/requests/:id/invite", s.assignmentHandler.Invite)
	s.router.GET("/admin/requests/:id/assignments", s.assignmentHandler.ListByRequest)
	s.router.DELETE("/admin/assignments/:id", s.assignmentHandler.Unassign)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) TestList() {
	s.Run("success: フィルタ付きで一覧を返す", func() {
		views := []*queries.RequestView{builder.NewRequestViewBuilder().Build()}
		s.mockRequestQueries.EXPECT().List(gomock.Any(), "pending", "2025-06-01", int32(10)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/requests?status=pending&date=2025-06-01&limit=10", nil, "")

		var body []*resdto.CallRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("pending", body[0].Status)
	})

	s.Run("error: 不正なステータスは 400", func() {
		s.mockRequestQueries.EXPECT().List(gomock.Any(), "bogus", "", int32(0)).
			Return(nil, errs.ErrInvalidRequestStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/requests?status=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RequestHandlerTestSuite) TestGet() {
	s.Run("success: リクエストを返す", func() {
		view := builder.NewRequestViewBuilder().WithID(42).Build()
		s.mockRequestQueries.EXPECT().Get(gomock.Any(), int64(42)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests/42", nil, "")

		var body resdto.CallRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(42), body.ID)
	})

	s.Run("error: 未知の ID は 404", func() {
		s.mockRequestQueries.EXPECT().Get(gomock.Any(), int64(404)).
			Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests/404", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 数値でない ID は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RequestHandlerTestSuite) TestUpdateStatus() {
	url := "/admin/requests/1/status"

	s.Run("success: 204 No Content", func() {
		s.mockAssignmentCmds.EXPECT().UpdateRequestStatus(gomock.Any(), int64(1), "closed").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateRequestStatusRequest{Status: "closed"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 許可外ステータスは 400", func() {
		s.mockAssignmentCmds.EXPECT().UpdateRequestStatus(gomock.Any(), int64(1), "frozen").
			Return(errs.ErrInvalidRequestStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateRequestStatusRequest{Status: "frozen"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RequestHandlerTestSuite) TestCandidates() {
	s.Run("success: 候補一覧を返す", func() {
		views := []*queries.CandidateView{{CastID: 3, Nickname: "あおい", Linked: true}}
		s.mockCandidates.EXPECT().FindForRequest(gomock.Any(), int64(1)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests/1/candidates", nil, "")

		var body []*resdto.CandidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.True(body[0].Linked)
	})

	s.Run("success: 窓指定検索", func() {
		s.mockCandidates.EXPECT().FindForWindow(gomock.Any(), "2025-06-01", "19:00", "21:00").
			Return([]*queries.CandidateView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/candidates?date=2025-06-01&start=19:00&end=21:00", nil, "")

		var body []*resdto.CandidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 不正な窓は 400", func() {
		s.mockCandidates.EXPECT().FindForWindow(gomock.Any(), "bad", "19:00", "21:00").
			Return(nil, errs.ErrInvalidTimeWindow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/candidates?date=bad&start=19:00&end=21:00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RequestHandlerTestSuite) TestInvite() {
	url := "/admin/requests/1/invite"

	s.Run("success: 201 で招待を返す", func() {
		view := builder.NewAssignmentViewBuilder().Build()
		s.mockAssignmentCmds.EXPECT().Invite(gomock.Any(), int64(1), int64(3), gomock.Nil()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.InviteCastRequest{CastID: 3}, "")

		var body resdto.AssignmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("invited", body.Status)
	})

	s.Run("error: 未知のキャストは 404", func() {
		s.mockAssignmentCmds.EXPECT().Invite(gomock.Any(), int64(1), int64(99), gomock.Nil()).
			Return(nil, errs.ErrCastNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.InviteCastRequest{CastID: 99}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cast")
	})

	s.Run("error: cast_id 欠落は 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RequestHandlerTestSuite) TestUnassign() {
	s.Run("success: 204 No Content", func() {
		s.mockAssignmentCmds.EXPECT().Unassign(gomock.Any(), int64(5)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/assignments/5", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: 存在しない assignment でも 204", func() {
		s.mockAssignmentCmds.EXPECT().Unassign(gomock.Any(), int64(999)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/assignments/999", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
