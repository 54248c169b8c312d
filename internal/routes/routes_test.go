package routes

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/cache"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/config"
)

// Registration alone must not touch the database, so a nil *gorm.DB is
// enough to assert the surface. This also catches wildcard/static
// conflicts, which gin reports by panicking here.
func TestRegisterRoutesSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, nil, &config.Config{JWTSecret: "test"}, &cache.AvailabilityCache{})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/forgot-password",
		"POST /api/auth/reset-password",
		"GET /api/auth/me",
		"PUT /api/auth/change-password",

		"GET /api/users/:id",
		"PUT /api/users/:id",
		"DELETE /api/users/:id",

		"GET /api/services",
		"GET /api/services/:id",

		"GET /api/barber/list",
		"GET /api/barber/profile/:id",
		"GET /api/barber/dashboard",
		"GET /api/barber/appointments",
		"PUT /api/barber/appointments/:id/status",
		"GET /api/barber/schedule",
		"POST /api/barber/schedule",

		"GET /api/appointments/availability/:barberId",
		"POST /api/appointments",
		"GET /api/appointments/my",
		"GET /api/appointments/user/:userId",
		"DELETE /api/appointments/:id",

		"POST /api/reviews",
		"GET /api/reviews/barber/:barberId",
		"PUT /api/reviews/:id",
		"DELETE /api/reviews/:id",

		"GET /api/admin/dashboard/stats",
		"GET /api/admin/dashboard/activities",
		"GET /api/admin/services",
		"GET /api/admin/services/:id",
		"POST /api/admin/services",
		"PUT /api/admin/services/:id",
		"DELETE /api/admin/services/:id",
		"GET /api/admin/barbers",
		"GET /api/admin/barbers/:id",
		"POST /api/admin/barbers",
		"PUT /api/admin/barbers/:id",
		"DELETE /api/admin/barbers/:id",
	}

	for _, w := range want {
		if !registered[w] {
			t.Errorf("route %s is not registered", w)
		}
	}
}
