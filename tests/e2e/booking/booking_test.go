//go:build e2e

package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"petshop-booking/internal/domain/user"
	"petshop-booking/internal/handler/dto/request"
	"petshop-booking/internal/handler/dto/response"
	"petshop-booking/tests/common/dbtest"
	"petshop-booking/tests/common/helper"
	"petshop-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL        = "/api/auth/login"
	appointmentsURL = "/api/appointments"
)

type bookingSuite struct {
	e2e.SharedSuite

	clientID   uuid.UUID
	petID      uuid.UUID
	groomingID uuid.UUID
	bathID     uuid.UUID
	token      string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.clientID = dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
	s.petID = dbtest.CreateTestPet(t, s.DB, s.clientID, "Rex")
	s.groomingID = dbtest.CreateTestService(t, s.DB, "Full Grooming", 60, 4500)
	s.bathID = dbtest.CreateTestService(t, s.DB, "Bath", 30, 2000)
	s.token = s.login("client@example.com", "password123")
}

func (s *bookingSuite) login(email, password string) string {
	t := s.T()

	w := helper.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
		Email:    email,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed")

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// nextTuesdayAt returns the upcoming Tuesday at the given hour, UTC. Using a
// fixed weekday keeps the expected schedule deterministic.
func nextTuesdayAt(hour, minute int) time.Time {
	now := time.Now().UTC().AddDate(0, 0, 7)
	for now.Weekday() != time.Tuesday {
		now = now.AddDate(0, 0, 1)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
}

func (s *bookingSuite) book(startTime time.Time, serviceIDs ...uuid.UUID) *response.AppointmentResponse {
	t := s.T()

	w := helper.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, request.CreateAppointmentRequest{
		PetID:      s.petID,
		ServiceIDs: serviceIDs,
		StartTime:  startTime,
	}, s.token)
	require.Equal(t, http.StatusCreated, w.Code, "booking failed: %s", w.Body.String())

	var resp response.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp
}

func (s *bookingSuite) TestCreateAppointment() {
	s.Run("multi-service booking derives duration and total price", func() {
		t := s.T()

		resp := s.book(nextTuesdayAt(10, 0), s.groomingID, s.bathID)
		require.Equal(t, 90, resp.DurationMinutes)
		require.Equal(t, int32(6500), resp.TotalPriceCents)
		require.Equal(t, "PENDING", resp.Status)
		require.Len(t, resp.Services, 2)
	})

	s.Run("overlapping booking is rejected with 409", func() {
		t := s.T()

		s.book(nextTuesdayAt(10, 0), s.groomingID)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, request.CreateAppointmentRequest{
			PetID:      s.petID,
			ServiceIDs: []uuid.UUID{s.bathID},
			StartTime:  nextTuesdayAt(10, 30),
		}, s.token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("back-to-back bookings are both accepted", func() {
		s.book(nextTuesdayAt(10, 0), s.groomingID)
		s.book(nextTuesdayAt(11, 0), s.bathID)
	})

	s.Run("booking past closing time is rejected", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, request.CreateAppointmentRequest{
			PetID:      s.petID,
			ServiceIDs: []uuid.UUID{s.groomingID},
			StartTime:  nextTuesdayAt(16, 30),
		}, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("cancelled slot can be rebooked", func() {
		t := s.T()

		first := s.book(nextTuesdayAt(10, 0), s.groomingID)

		w := helper.PerformRequest(t, s.Router, http.MethodDelete, appointmentsURL+"/"+first.ID.String(), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		s.book(nextTuesdayAt(10, 0), s.bathID)
	})

	s.Run("concurrent bookings for the same slot admit exactly one", func() {
		t := s.T()

		start := nextTuesdayAt(10, 0)
		const attempts = 5

		var wg sync.WaitGroup
		codes := make([]int, attempts)
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := helper.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, request.CreateAppointmentRequest{
					PetID:      s.petID,
					ServiceIDs: []uuid.UUID{s.groomingID},
					StartTime:  start,
				}, s.token)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
			} else {
				require.Contains(t, []int{http.StatusConflict, http.StatusServiceUnavailable}, code)
			}
		}
		require.Equal(t, 1, created, "exactly one concurrent booking must win")

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM appointments WHERE status <> 'CANCELLED'").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

func (s *bookingSuite) TestSubscriptionBooking() {
	s.Run("credits fund a booking and are conserved on failure", func() {
		t := s.T()

		// Plan granting one grooming credit.
		planID := uuid.New()
		creditsJSON, err := json.Marshal([]map[string]any{
			{"serviceId": s.groomingID, "quantity": 1},
		})
		require.NoError(t, err)
		_, err = s.DB.Exec(context.Background(),
			"INSERT INTO subscription_plans (id, name, price_cents, credits) VALUES ($1, 'Starter', 9900, $2)",
			planID, creditsJSON)
		require.NoError(t, err)

		w := helper.PerformRequest(t, s.Router, http.MethodPost, "/api/subscriptions", request.SubscribeRequest{
			PlanID: planID,
		}, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// First subscription booking succeeds and is confirmed immediately.
		reqBody := request.CreateAppointmentRequest{
			PetID:           s.petID,
			ServiceIDs:      []uuid.UUID{s.groomingID},
			StartTime:       nextTuesdayAt(10, 0),
			UseSubscription: true,
		}
		w = helper.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp response.AppointmentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "CONFIRMED", resp.Status)
		require.True(t, resp.FromSubscription)

		// Credit exhausted: second attempt fails with 402 naming the service
		// that ran out, and writes nothing.
		reqBody.StartTime = nextTuesdayAt(14, 0)
		w = helper.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, s.token)
		require.Equal(t, http.StatusPaymentRequired, w.Code)

		var errBody map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		require.Contains(t, errBody["error"], "Full Grooming")

		var remaining int
		err = s.DB.QueryRow(context.Background(),
			"SELECT remaining_credits FROM subscription_credits WHERE client_id = $1 AND service_id = $2",
			s.clientID, s.groomingID).Scan(&remaining)
		require.NoError(t, err)
		require.Equal(t, 0, remaining)

		var count int
		err = s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM appointments").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "failed booking must not persist an appointment")
	})
}
