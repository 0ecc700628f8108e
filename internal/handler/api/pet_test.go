//go:build unit

package api_test

import (
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
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PetHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockPetCommands
	mockQueries     *queriesmock.MockPetQueries
	mockApptQueries *queriesmock.MockAppointmentQueries
	handler         *api.PetHandler
}

func (s *PetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPetCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPetQueries(s.mockCtrl)
	s.mockApptQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewPetHandler(s.mockCommands, s.mockQueries, s.mockApptQueries)

	s.router.GET("/pets", s.handler.ListPets)
	s.router.POST("/pets", s.handler.CreatePet)
	s.router.GET("/pets/:id", s.handler.GetPet)
	s.router.PUT("/pets/:id", s.handler.UpdatePet)
	s.router.DELETE("/pets/:id", s.handler.DeletePet)
	s.router.GET("/pets/:id/appointments", s.handler.ListPetAppointments)
}

func (s *PetHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPetHandlerSuite(t *testing.T) {
	suite.Run(t, new(PetHandlerTestSuite))
}

// ================================================================================
// TestListPets
// ================================================================================

func (s *PetHandlerTestSuite) TestListPets() {
	s.Run("success: returns 200 OK with all pets", func() {
		dog := builder.NewPetBuilder().BuildView()
		cat := builder.NewPetBuilder().AsCat().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.PetView{dog, cat}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets", nil, nil)

		var response []resdto.PetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("dog", response[0].Species)
		s.Equal("cat", response[1].Species)
	})
}

// ================================================================================
// TestGetPet
// ================================================================================

func (s *PetHandlerTestSuite) TestGetPet() {
	petID := uuid.New()
	url := "/pets/" + petID.String()
	returnView := builder.NewPetBuilder().WithID(petID).BuildView()

	s.Run("success: returns 200 OK with PetResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), petID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)

		var response resdto.PetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(petID, response.ID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.Breed, response.Breed)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets/invalid-uuid", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pet ID")
	})
}

// ================================================================================
// TestListPetAppointments
// ================================================================================

func (s *PetHandlerTestSuite) TestListPetAppointments() {
	petID := uuid.New()
	url := "/pets/" + petID.String() + "/appointments"

	s.Run("success: returns 200 OK with the pet's history", func() {
		item := builder.NewAppointmentBuilder().WithPetID(petID).BuildListItem()
		s.mockApptQueries.EXPECT().ListByPet(gomock.Any(), petID).
			Return([]*queries.AppointmentListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)

		var response []resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(item.PetName, response[0].PetName)
	})

	s.Run("success: returns 200 OK with an empty history", func() {
		s.mockApptQueries.EXPECT().ListByPet(gomock.Any(), petID).
			Return([]*queries.AppointmentListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)

		var response []resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

// ================================================================================
// TestCreatePet
// ================================================================================

func (s *PetHandlerTestSuite) TestCreatePet() {
	url := "/pets"
	reqBody := builder.NewPetBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new ID", func() {
		petID := uuid.New()
		s.mockCommands.EXPECT().CreatePet(gomock.Any(), reqBody.ToCommand()).
			Return(&commands.CreatePetResult{PetID: petID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(petID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: tutor_name (required)", mutate: testutil.Field("tutor_name", nil)},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: species (required)", mutate: testutil.Field("species", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 Unprocessable Entity for an unknown species", func() {
		s.mockCommands.EXPECT().CreatePet(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("species", "dragon"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "validation")
	})
}

// ================================================================================
// TestUpdatePet
// ================================================================================

func (s *PetHandlerTestSuite) TestUpdatePet() {
	petID := uuid.New()
	url := "/pets/" + petID.String()
	reqBody := builder.NewPetBuilder().WithName("Loki").BuildUpdateRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdatePet(gomock.Any(), petID, reqBody.ToCommand()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for missing pet", func() {
		s.mockCommands.EXPECT().UpdatePet(gomock.Any(), petID, reqBody.ToCommand()).
			Return(commands.ErrPetNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pet not found")
	})
}

// ================================================================================
// TestDeletePet
// ================================================================================

func (s *PetHandlerTestSuite) TestDeletePet() {
	petID := uuid.New()
	url := "/pets/" + petID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeletePet(gomock.Any(), petID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for missing pet", func() {
		s.mockCommands.EXPECT().DeletePet(gomock.Any(), petID).
			Return(commands.ErrPetNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pet not found")
	})
}
