//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"groomly/internal/handler/api"
	resdto "groomly/internal/handler/dto/response"
	"groomly/internal/usecase/commands"
	"groomly/internal/usecase/queries"
	"groomly/tests/common/builder"
	"groomly/tests/common/httptest"
	"groomly/tests/common/testutil"
	commandsmock "groomly/tests/mock/commands"
	queriesmock "groomly/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/services", s.handler.ListServices)
	s.router.POST("/services", s.handler.CreateService)
	s.router.GET("/services/:id", s.handler.GetService)
	s.router.PUT("/services/:id", s.handler.UpdateService)
	s.router.DELETE("/services/:id", s.handler.DeleteService)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

// ================================================================================
// TestListServices
// ================================================================================

func (s *CatalogHandlerTestSuite) TestListServices() {
	active := builder.NewServiceBuilder().BuildView()
	retired := builder.NewServiceBuilder().WithID(2).WithName("Tosa na maquina").AsInactive().BuildView()

	s.Run("success: returns 200 OK with the active catalogue", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), false).
			Return([]*queries.ServiceView{active}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, nil)

		var response []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(active.Name, response[0].Name)
	})

	s.Run("success: include_inactive widens the listing", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), true).
			Return([]*queries.ServiceView{active, retired}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services?include_inactive=true", nil, nil)

		var response []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.False(response[1].Active)
	})
}

// ================================================================================
// TestGetService
// ================================================================================

func (s *CatalogHandlerTestSuite) TestGetService() {
	returnView := builder.NewServiceBuilder().WithID(7).BuildView()

	s.Run("success: returns 200 OK with ServiceResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/7", nil, nil)

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7), response.ID)
		s.Equal(returnView.PriceCents, response.PriceCents)
		s.Equal(returnView.DurationMinutes, response.DurationMinutes)
	})

	s.Run("error: 400 Bad Request for a non-numeric ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/banho", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID")
	})

	s.Run("error: 400 Bad Request for a non-positive ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/0", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID")
	})
}

// ================================================================================
// TestCreateService
// ================================================================================

func (s *CatalogHandlerTestSuite) TestCreateService() {
	url := "/services"
	reqBody := builder.NewServiceBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new ID", func() {
		s.mockCommands.EXPECT().CreateService(gomock.Any(), reqBody.ToCommand()).
			Return(&commands.CreateServiceResult{ServiceID: 42}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body map[string]int64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(42), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: duration_minutes (required)", mutate: testutil.Field("duration_minutes", nil)},
			{name: "duration boundary invalid (0)", mutate: testutil.Field("duration_minutes", 0)},
			{name: "negative price", mutate: testutil.Field("price_cents", -100)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 Unprocessable Entity on domain validation", func() {
		s.mockCommands.EXPECT().CreateService(gomock.Any(), reqBody.ToCommand()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "validation")
	})
}

// ================================================================================
// TestUpdateService
// ================================================================================

func (s *CatalogHandlerTestSuite) TestUpdateService() {
	url := "/services/7"
	reqBody := builder.NewServiceBuilder().WithPriceCents(7500).BuildUpdateRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateService(gomock.Any(), int64(7), reqBody.ToCommand()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for missing service", func() {
		s.mockCommands.EXPECT().UpdateService(gomock.Any(), int64(7), reqBody.ToCommand()).
			Return(commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

// ================================================================================
// TestDeleteService
// ================================================================================

func (s *CatalogHandlerTestSuite) TestDeleteService() {
	s.Run("success: returns 204 No Content on retirement", func() {
		s.mockCommands.EXPECT().DeactivateService(gomock.Any(), int64(7)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/services/7", nil, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for missing service", func() {
		s.mockCommands.EXPECT().DeactivateService(gomock.Any(), int64(7)).
			Return(commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/services/7", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("error: 500 Internal Server Error on repository failure", func() {
		s.mockCommands.EXPECT().DeactivateService(gomock.Any(), int64(7)).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/services/7", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
