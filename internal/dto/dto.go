package dto

import "time"

// ---------- Appointments ----------

type CustomerAppointmentDTO struct {
	ID              uint      `json:"id"`
	BarberID        uint      `json:"barber_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`

	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceDuration int     `json:"service_duration"`

	BarberName  string `json:"barber_name"`
	BarberEmail string `json:"barber_email"`
	BarberPhone string `json:"barber_phone"`
}

type BarberAppointmentDTO struct {
	ID              uint   `json:"id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceDuration int     `json:"service_duration"`
}

// ---------- Barbers ----------

type BarberListDTO struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ProfileImage    string    `json:"profile_image"`
	Specialties     string    `json:"specialties"`
	YearsExperience int       `json:"years_experience"`
	Bio             string    `json:"bio"`
	Rating          float64   `json:"rating"`
	TotalReviews    int       `json:"total_reviews"`
	CreatedAt       time.Time `json:"created_at"`

	TotalAppointments     int64 `json:"total_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
}

// ---------- Reviews ----------

type ReviewDTO struct {
	ID            uint      `json:"id"`
	AppointmentID uint      `json:"appointment_id"`
	BarberID      uint      `json:"barber_id"`
	CustomerID    uint      `json:"customer_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`

	CustomerName  string `json:"customer_name"`
	CustomerImage string `json:"profile_image"`
}

// ---------- Admin dashboard ----------

type DashboardTotals struct {
	TotalServices     int64   `json:"totalServices"`
	TotalAppointments int64   `json:"totalAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalBarbers      int64   `json:"totalBarbers"`
}

type RecentBookingDTO struct {
	ID              uint    `json:"id"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	BarberName      string  `json:"barber_name"`
	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
}

type MonthlyRevenueDTO struct {
	Month    string  `json:"month"`
	MonthNum int     `json:"month_num"`
	Revenue  float64 `json:"revenue"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ServiceStatsDTO struct {
	TotalServices int64   `json:"total_services"`
	AveragePrice  float64 `json:"average_price"`
	LowestPrice   float64 `json:"lowest_price"`
	HighestPrice  float64 `json:"highest_price"`
}

// ---------- Barber dashboard ----------

type BarberDashboardDTO struct {
	TodayAppointments []BarberAppointmentDTO `json:"today_appointments"`
	PendingCount      int64                  `json:"pending_count"`
	WeekTotal         int64                  `json:"week_total"`
	WeekCompleted     int64                  `json:"week_completed"`
}
