package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httpresp"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/middleware"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UpdateProfileRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid user ID")
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userResponse(&user),
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid user ID")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	if userID != uint(id) {
		httperr.Forbidden(c, "You can only update your own profile")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.ProfileImage != "" {
		updates["profile_image"] = req.ProfileImage
	}

	if len(updates) == 0 {
		httperr.BadRequest(c, "At least one field (name, phone, or profile_image) is required")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		httperr.Internal(c, "Server error")
		return
	}

	httpresp.OKMessage(c, "Profile updated successfully", userResponse(&user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Current password and new password are required")
		return
	}

	if req.CurrentPassword == req.NewPassword {
		httperr.BadRequest(c, "New password must be different from current password")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.Unauthorized(c, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Failed to hash password")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}

// DeleteAccount removes the user and all dependent rows in one
// transaction; a barber's appointments, reviews and schedule go with the
// profile.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid user ID")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	if userID != uint(id) {
		httperr.Forbidden(c, "You can only delete your own account")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", userID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		var barber models.Barber
		if err := tx.Where("user_id = ?", userID).First(&barber).Error; err == nil {
			if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.Appointment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.WorkingHours{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&barber).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		httperr.Internal(c, "Failed to delete account")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account deleted successfully",
	})
}
