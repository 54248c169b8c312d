package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/middleware"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/timezone"
)

func TestWriteCreateErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		code       string
		wantStatus int
	}{
		{"invalid_date", http.StatusBadRequest},
		{"invalid_time", http.StatusBadRequest},
		{"service_not_found", http.StatusNotFound},
		{"barber_not_found", http.StatusNotFound},
		{"invalid_service_duration", http.StatusInternalServerError},
		{"time_in_past", http.StatusBadRequest},
		{"outside_working_hours", http.StatusBadRequest},
		{"time_conflict", http.StatusConflict},
		{"something_unmapped", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			writeCreateError(c, httperr.ErrBusiness(tc.code))

			if rec.Code != tc.wantStatus {
				t.Errorf("code %q: got status %d, want %d", tc.code, rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-03-09")
	if err != nil {
		t.Fatalf("parseDate returned error: %v", err)
	}
	if d.Year() != 2025 || int(d.Month()) != 3 || d.Day() != 9 {
		t.Errorf("parsed wrong date: %v", d)
	}

	if _, err := parseDate("03/09/2025"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestCacheableDate(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 30, 0, 0, timezone.Location())

	if cacheableDate(now, now) {
		t.Error("same-day availability must bypass the cache")
	}
	if !cacheableDate(now.AddDate(0, 0, 1), now) {
		t.Error("future dates should be cacheable")
	}
	if !cacheableDate(now.AddDate(0, 0, -1), now) {
		t.Error("past dates do not depend on the current time")
	}
}

func TestGetUserAppointmentsOwnership(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := newFakeRepo()
	repo.appointmentsByCustomer[7] = []models.Appointment{
		{ID: 1, CustomerID: 7, BarberID: 2, AppointmentTime: "10:00:00"},
	}
	h := &AppointmentHandler{repo: repo}

	cases := []struct {
		name        string
		requesterID uint
		role        string
		targetParam string
		wantStatus  int
	}{
		{"self", 7, models.RoleCustomer, "7", http.StatusOK},
		{"other customer", 8, models.RoleCustomer, "7", http.StatusForbidden},
		{"admin for anyone", 1, models.RoleAdmin, "7", http.StatusOK},
		{"barber for someone else", 3, models.RoleBarber, "7", http.StatusForbidden},
		{"bad id", 7, models.RoleCustomer, "abc", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Params = gin.Params{{Key: "userId", Value: tc.targetParam}}
			c.Set(middleware.ContextUserID, tc.requesterID)
			c.Set(middleware.ContextUserRole, tc.role)

			h.GetUserAppointments(c)

			if rec.Code != tc.wantStatus {
				t.Errorf("got status %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}
