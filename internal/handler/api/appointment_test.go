//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petshop-booking/internal/domain/appointment"
	"petshop-booking/internal/domain/user"
	"petshop-booking/internal/handler/api"
	reqdto "petshop-booking/internal/handler/dto/request"
	"petshop-booking/internal/pkg/errs"
	"petshop-booking/internal/usecase/commands"
	"petshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	view *queries.AppointmentView
	err  error
}

func (s *stubBookingCommands) Create(_ context.Context, _ uuid.UUID, _ reqdto.CreateAppointmentRequest) (*queries.AppointmentView, error) {
	return s.view, s.err
}

type stubAppointmentCommands struct {
	err error
}

func (s *stubAppointmentCommands) UpdateStatus(_ context.Context, _ uuid.UUID, _ appointment.Status) error {
	return s.err
}

func (s *stubAppointmentCommands) Cancel(_ context.Context, _ uuid.UUID, _ uuid.UUID, _ user.Role) error {
	return s.err
}

type stubAppointmentQueries struct {
	view  *queries.AppointmentView
	items []*queries.AppointmentListItem
	err   error
}

func (s *stubAppointmentQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.AppointmentView, error) {
	return s.view, s.err
}

func (s *stubAppointmentQueries) ListByClient(_ context.Context, _ uuid.UUID, _, _ int) ([]*queries.AppointmentListItem, error) {
	return s.items, s.err
}

func (s *stubAppointmentQueries) ListByDay(_ context.Context, _, _ time.Time) ([]*queries.AppointmentListItem, error) {
	return s.items, s.err
}

type AppointmentHandlerTestSuite struct {
	suite.Suite
	userID  uuid.UUID
	booking *stubBookingCommands
	appts   *stubAppointmentCommands
	q       *stubAppointmentQueries
	router  *gin.Engine
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.userID = uuid.New()
	s.booking = &stubBookingCommands{}
	s.appts = &stubAppointmentCommands{}
	s.q = &stubAppointmentQueries{}

	handler := api.NewAppointmentHandler(s.booking, s.appts, s.q)

	s.router = gin.New()
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleClient)
	}
	s.router.POST("/appointments", authed, handler.Create)
	s.router.DELETE("/appointments/:id", authed, handler.Cancel)
	s.router.PATCH("/appointments/:id/status", authed, handler.UpdateStatus)
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) postBooking() *httptest.ResponseRecorder {
	body, err := json.Marshal(reqdto.CreateAppointmentRequest{
		PetID:      uuid.New(),
		ServiceIDs: []uuid.UUID{uuid.New()},
		StartTime:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AppointmentHandlerTestSuite) TestCreateStatusMapping() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "validation failure", err: commands.ErrDomainValidation, expectCode: http.StatusBadRequest},
		{name: "schedule missing", err: commands.ErrScheduleNotConfigured, expectCode: http.StatusInternalServerError},
		{name: "unknown service", err: commands.ErrServiceNotFound, expectCode: http.StatusNotFound},
		{name: "unknown pet", err: commands.ErrPetNotFound, expectCode: http.StatusNotFound},
		{name: "foreign pet", err: commands.ErrPetOwnership, expectCode: http.StatusForbidden},
		{name: "closed day", err: commands.ErrShopClosed, expectCode: http.StatusBadRequest},
		{name: "after hours", err: commands.ErrOutsideOperatingHours, expectCode: http.StatusBadRequest},
		{name: "slot taken", err: commands.ErrScheduleConflict, expectCode: http.StatusConflict},
		{name: "no credits", err: commands.ErrInsufficientCredits, expectCode: http.StatusPaymentRequired},
		{name: "retries exhausted", err: commands.ErrStorageConflict, expectCode: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.booking.err = tc.err
			rec := s.postBooking()
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

func (s *AppointmentHandlerTestSuite) TestCreateSuccess() {
	s.booking.err = nil
	s.booking.view = &queries.AppointmentView{
		ID:       uuid.New(),
		ClientID: s.userID,
		Status:   "PENDING",
	}

	rec := s.postBooking()
	s.Equal(http.StatusCreated, rec.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("PENDING", resp["status"])
}

func (s *AppointmentHandlerTestSuite) TestCreateInsufficientCreditsNamesService() {
	s.booking.err = errs.Mark(
		&commands.InsufficientCreditsError{ServiceName: "Full Grooming"},
		commands.ErrInsufficientCredits,
	)

	rec := s.postBooking()
	s.Equal(http.StatusPaymentRequired, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Contains(resp["error"], "Full Grooming")
}

func (s *AppointmentHandlerTestSuite) TestCreateRetryAfterHeader() {
	s.booking.err = commands.ErrStorageConflict
	rec := s.postBooking()
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.NotEmpty(rec.Header().Get("Retry-After"))
}

func (s *AppointmentHandlerTestSuite) TestCancelStatusMapping() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "success", err: nil, expectCode: http.StatusNoContent},
		{name: "not found", err: commands.ErrAppointmentNotFound, expectCode: http.StatusNotFound},
		{name: "not owner", err: commands.ErrNotAppointmentOwner, expectCode: http.StatusForbidden},
		{name: "already completed", err: commands.ErrInvalidTransition, expectCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.appts.err = tc.err
			req := httptest.NewRequest(http.MethodDelete, "/appointments/"+uuid.NewString(), nil)
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, req)
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

func (s *AppointmentHandlerTestSuite) TestUpdateStatusRejectsUnknownValue() {
	body := bytes.NewReader([]byte(`{"status":"DONE"}`))
	req := httptest.NewRequest(http.MethodPatch, "/appointments/"+uuid.NewString()+"/status", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}
