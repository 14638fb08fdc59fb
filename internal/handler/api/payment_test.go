//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/handler/api"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/pkg/ptr"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/tests/common/httptest"
	commandsmock "hotel-pms/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	staffID      uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.staffID = uuid.New()
	handler := api.NewPaymentHandler(s.mockCommands)

	auth := fakeAuth(s.staffID)
	s.router.POST("/reservations/:id/payments", auth, handler.Record)
	s.router.DELETE("/payments/:paymentId", auth, handler.Delete)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestRecord() {
	resID := uuid.New()
	url := "/reservations/" + resID.String() + "/payments"

	s.Run("success: request is copied onto the command", func() {
		s.SetupTest()
		invoiceID := uuid.New()
		want := commands.RecordPaymentRequest{
			ReservationID: resID,
			Date:          "2030-04-11",
			RoomID:        ptr.Of(int32(101)),
			PaymentTypeID: 2,
			Amount:        1500.5,
			Comment:       "deposit",
		}
		s.mockCommands.EXPECT().
			RecordPayment(gomock.Any(), want, &s.staffID).
			Return(&commands.PaymentResult{PaymentID: uuid.New(), InvoiceID: &invoiceID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"date": "2030-04-11", "roomId": 101, "paymentTypeId": 2, "value": 1500.5, "comment": "deposit",
		}, "bearer-token")

		var body resdto.RecordPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.InvoiceID)
		s.Equal(invoiceID, *body.InvoiceID)
	})

	s.Run("error: 400 without payment type", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"value": 100}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: zero amount is a validation error", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrZeroAmount)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"paymentTypeId": 1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for unknown reservation", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, reservation.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"paymentTypeId": 1, "value": 10}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *PaymentHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().DeletePayment(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/payments/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown payment", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().DeletePayment(gomock.Any(), id).Return(reservation.ErrPaymentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/payments/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "payment not found")
	})
}
