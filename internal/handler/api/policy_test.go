//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"barbershop-booking/internal/domain/policy"
	"barbershop-booking/internal/handler/api"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/pkg/patch"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/tests/common/httptest"
	commandsmock "barbershop-booking/tests/mock/commands"
	queriesmock "barbershop-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PolicyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPolicyCommands
	mockQueries  *queriesmock.MockPolicyQueries
	handler      *api.PolicyHandler
}

func (s *PolicyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPolicyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPolicyQueries(s.mockCtrl)
	s.handler = api.NewPolicyHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/policy", s.handler.Get)
	s.router.PATCH("/policy", s.handler.Update)
}

func (s *PolicyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPolicyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PolicyHandlerTestSuite))
}

func (s *PolicyHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().Current(gomock.Any()).Return(queries.NewPolicyView(policy.Default())).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/policy", nil)

	var got resdto.PolicyResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Equal(resdto.PolicyResponse{
		OpeningTime:             "09:00",
		ClosingTime:             "20:00",
		CancellationNotice:      "2 hours",
		CancellationPolicyText:  "You can cancel up to 2 hours before your appointment without penalty",
		MidweekDiscountFraction: 0.1,
	}, got)
}

func (s *PolicyHandlerTestSuite) TestUpdate() {
	s.Run("success: partial update", func() {
		updated := policy.Default()
		updated.ClosingTime = "21:00"
		s.mockCommands.EXPECT().Update(gomock.Any(), commands.UpdatePolicyParams{ClosingTime: patch.Ptr("21:00")}).
			Return(queries.NewPolicyView(updated), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/policy", map[string]any{"closing_time": "21:00"})

		var got resdto.PolicyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("21:00", got.ClosingTime)
	})

	s.Run("error: empty body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/policy", map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No fields to update")
	})

	s.Run("error: invalid policy returns 422", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: opening time 22:00 is after closing time 20:00", policy.ErrInvalidPolicy)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/policy", map[string]any{"opening_time": "22:00"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "opening time 22:00 is after closing time 20:00")
	})
}
