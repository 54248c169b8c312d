package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/audit"
	domain "github.com/haircut-workshop-team/Haircut-Workshop/internal/domain/appointment"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/dto"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httpresp"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/middleware"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewReviewHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{db: db, audit: auditDispatcher}
}

type CreateReviewRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReviewHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "appointment_id and rating are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "Appointment not found")
		return
	}
	if ap.CustomerID != customerID {
		httperr.Forbidden(c, "You can only review your own appointments")
		return
	}
	if ap.Status != string(domain.StatusCompleted) {
		httperr.BadRequest(c, "You can only review completed appointments")
		return
	}

	var existing int64
	h.db.Model(&models.Review{}).
		Where("appointment_id = ?", ap.ID).
		Count(&existing)
	if existing > 0 {
		httperr.BadRequest(c, "This appointment has already been reviewed")
		return
	}

	review := models.Review{
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		CustomerID:    customerID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "Failed to create review")
		return
	}

	if err := h.recalculateRating(ap.BarberID); err != nil {
		httperr.Internal(c, "Failed to update barber rating")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &review.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"rating":    req.Rating,
		},
	})

	httpresp.Created(c, "Review submitted successfully", review)
}

// ======================================================
// LISTING
// ======================================================

func (h *ReviewHandler) ListByBarber(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid barber ID")
		return
	}

	var reviews []models.Review
	if err := h.db.Preload("Customer").
		Where("barber_id = ?", uint(barberID)).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "Failed to fetch reviews")
		return
	}

	out := make([]dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, dto.ReviewDTO{
			ID:            r.ID,
			AppointmentID: r.AppointmentID,
			BarberID:      r.BarberID,
			CustomerID:    r.CustomerID,
			Rating:        r.Rating,
			Comment:       r.Comment,
			CreatedAt:     r.CreatedAt,
			CustomerName:  r.Customer.Name,
			CustomerImage: r.Customer.ProfileImage,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *ReviewHandler) Update(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	review, ok := h.ownReview(c, customerID)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Rating is required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	review.Rating = req.Rating
	review.Comment = req.Comment

	if err := h.db.Save(review).Error; err != nil {
		httperr.Internal(c, "Failed to update review")
		return
	}

	if err := h.recalculateRating(review.BarberID); err != nil {
		httperr.Internal(c, "Failed to update barber rating")
		return
	}

	httpresp.OKMessage(c, "Review updated successfully", review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	review, ok := h.ownReview(c, customerID)
	if !ok {
		return
	}

	if err := h.db.Delete(review).Error; err != nil {
		httperr.Internal(c, "Failed to delete review")
		return
	}

	if err := h.recalculateRating(review.BarberID); err != nil {
		httperr.Internal(c, "Failed to update barber rating")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review deleted successfully",
	})
}

func (h *ReviewHandler) ownReview(c *gin.Context, customerID uint) (*models.Review, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid review ID")
		return nil, false
	}

	var review models.Review
	if err := h.db.First(&review, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Review not found")
		} else {
			httperr.Internal(c, "Failed to fetch review")
		}
		return nil, false
	}

	if review.CustomerID != customerID {
		httperr.Forbidden(c, "You can only modify your own reviews")
		return nil, false
	}

	return &review, true
}

// recalculateRating rewrites the barber's denormalized rating aggregate
// from the surviving reviews.
func (h *ReviewHandler) recalculateRating(barberID uint) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := h.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("barber_id = ?", barberID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return h.db.Model(&models.Barber{}).
		Where("id = ?", barberID).
		Updates(map[string]any{
			"rating":        agg.Avg,
			"total_reviews": agg.Count,
		}).Error
}
