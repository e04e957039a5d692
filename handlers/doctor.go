package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/models"
	"clinicbook/services/doctor"
	"clinicbook/utils"
)

// DoctorHandler serves the doctor panel plus the public doctor directory.
type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

func (h *DoctorHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.DoctorService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *DoctorHandler) GoogleLinkHandler(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required"`
		FirebaseUID string `json:"firebaseUid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.DoctorService.LinkGoogleAccount(c.Request.Context(), req.Email, req.FirebaseUID); err != nil {
		utils.GetLogger().Error("Doctor google link failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account linked"})
}

// ListHandler serves the public doctor directory consumed by the patient app.
func (h *DoctorHandler) ListHandler(c *gin.Context) {
	doctors, err := h.DoctorService.ListPublic()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (h *DoctorHandler) ProfileHandler(c *gin.Context) {
	docID, ok := contextID(c, "doctorID")
	if !ok {
		return
	}
	doc, err := h.DoctorService.Profile(docID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DoctorHandler) UpdateProfileHandler(c *gin.Context) {
	docID, ok := contextID(c, "doctorID")
	if !ok {
		return
	}
	var update models.DoctorProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.DoctorService.UpdateProfile(docID, update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func (h *DoctorHandler) ToggleAvailabilityHandler(c *gin.Context) {
	docID, ok := contextID(c, "doctorID")
	if !ok {
		return
	}
	if err := h.DoctorService.ToggleAvailable(docID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability changed"})
}

func (h *DoctorHandler) ListAppointmentsHandler(c *gin.Context) {
	docID, ok := contextID(c, "doctorID")
	if !ok {
		return
	}
	appts, err := h.DoctorService.Appointments(docID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *DoctorHandler) CancelAppointmentHandler(c *gin.Context) {
	docID, ok := contextID(c, "doctorID")
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

	if err := h.DoctorService.CancelAppointment(docID, req.AppointmentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

func (h *DoctorHandler) CompleteAppointmentHandler(c *gin.Context) {
	docID, ok := contextID(c, "doctorID")
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

	if err := h.DoctorService.CompleteAppointment(docID, req.AppointmentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment completed"})
}

func (h *DoctorHandler) DashboardHandler(c *gin.Context) {
	docID, ok := contextID(c, "doctorID")
	if !ok {
		return
	}
	dash, err := h.DoctorService.Dashboard(docID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}
