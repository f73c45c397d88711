//go:build e2e

package schedule_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"petshop-booking/internal/domain/user"
	"petshop-booking/internal/handler/dto/request"
	"petshop-booking/internal/handler/dto/response"
	"petshop-booking/tests/common/dbtest"
	"petshop-booking/tests/common/helper"
	"petshop-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	scheduleURL = "/api/schedule"
)

type scheduleSuite struct {
	e2e.SharedSuite

	adminToken  string
	clientToken string
}

func TestScheduleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(scheduleSuite))
}

func (s *scheduleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
	s.adminToken = s.login("admin@example.com")
	s.clientToken = s.login("client@example.com")
}

func (s *scheduleSuite) login(email string) string {
	t := s.T()

	w := helper.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
		Email:    email,
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed")

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken
}

func (s *scheduleSuite) TestSchedule() {
	s.Run("update round-trips through get", func() {
		t := s.T()

		update := request.UpdateScheduleRequest{
			"monday":  {Open: true, Start: "08:00", End: "18:00"},
			"tuesday": {Open: true, Start: "09:00", End: "17:00"},
			"sunday":  {Open: false},
		}

		w := helper.PerformRequest(t, s.Router, http.MethodPut, scheduleURL, update, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = helper.PerformRequest(t, s.Router, http.MethodGet, scheduleURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var got response.ScheduleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

		want := response.ScheduleResponse{
			"monday":  {Open: true, Start: "08:00", End: "18:00"},
			"tuesday": {Open: true, Start: "09:00", End: "17:00"},
			"sunday":  {Open: false},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("schedule mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("invalid hours are rejected", func() {
		t := s.T()

		update := request.UpdateScheduleRequest{
			"monday": {Open: true, Start: "18:00", End: "08:00"},
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPut, scheduleURL, update, s.adminToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("clients cannot update the schedule", func() {
		t := s.T()

		update := request.UpdateScheduleRequest{
			"monday": {Open: true, Start: "08:00", End: "18:00"},
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPut, scheduleURL, update, s.clientToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
