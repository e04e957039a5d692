package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/models"
	"clinicbook/services/payment"
	"clinicbook/services/user"
	"clinicbook/utils"
)

// UserHandler serves the patient-facing endpoints.
type UserHandler struct {
	UserService user.UserService
	PaymentSvc  payment.PaymentService
}

// contextID reads an entity ID the auth middleware placed on the context.
func contextID(c *gin.Context, key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid session"})
		return "", false
	}
	return id, true
}

// saveUploadedTemp writes a multipart form file to a temp path. The caller
// removes it after the upload to the CDN.
func saveUploadedTemp(c *gin.Context, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		return "", err
	}
	return tempFilePath, nil
}

func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("User registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) GoogleAuthHandler(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required"`
		Name        string `json:"name" binding:"required"`
		FirebaseUID string `json:"firebaseUid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := h.UserService.GoogleAuth(c.Request.Context(), req.Email, req.Name, req.FirebaseUID)
	if err != nil {
		utils.GetLogger().Error("Google sign-in failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) ProfileHandler(c *gin.Context) {
	userID, ok := contextID(c, "userID")
	if !ok {
		return
	}
	usr, err := h.UserService.Profile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler accepts a multipart form: profile fields as a JSON
// "data" field plus an optional "image" file.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := contextID(c, "userID")
	if !ok {
		return
	}

	var update models.UserProfileUpdate
	if data := c.PostForm("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile data"})
			return
		}
	} else if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if tempPath, err := saveUploadedTemp(c, "image"); err == nil {
		update.ImagePath = tempPath
		defer os.Remove(tempPath)
	}

	if err := h.UserService.UpdateProfile(c.Request.Context(), userID, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func (h *UserHandler) AvailableSlotsHandler(c *gin.Context) {
	docID := c.Param("docId")
	days, err := h.UserService.AvailableSlots(docID, time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": days})
}

func (h *UserHandler) BookAppointmentHandler(c *gin.Context) {
	userID, ok := contextID(c, "userID")
	if !ok {
		return
	}
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.UserService.Book(userID, req)
	if err != nil {
		if errors.Is(err, user.ErrSlotUnavailable) {
			c.JSON(http.StatusConflict, gin.H{"error": "Slot is no longer available"})
			return
		}
		utils.GetLogger().Error("Booking failed",
			zap.String("userId", userID), zap.String("docId", req.DocID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *UserHandler) ListAppointmentsHandler(c *gin.Context) {
	userID, ok := contextID(c, "userID")
	if !ok {
		return
	}
	appts, err := h.UserService.Appointments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *UserHandler) CancelAppointmentHandler(c *gin.Context) {
	userID, ok := contextID(c, "userID")
	if !ok {
		return
	}
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.UserService.Cancel(userID, req.AppointmentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

func (h *UserHandler) CreatePaymentHandler(c *gin.Context) {
	userID, ok := contextID(c, "userID")
	if !ok {
		return
	}
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.PaymentSvc.CreateIntent(userID, req.AppointmentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

func (h *UserHandler) VerifyPaymentHandler(c *gin.Context) {
	userID, ok := contextID(c, "userID")
	if !ok {
		return
	}
	var req struct {
		AppointmentID   string `json:"appointmentId" binding:"required"`
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.PaymentSvc.Verify(userID, req.AppointmentID, req.PaymentIntentID); err != nil {
		if errors.Is(err, payment.ErrPaymentIncomplete) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}
