package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/models"
	"clinicbook/services/admin"
	"clinicbook/utils"
)

// AdminHandler serves the back-office endpoints.
type AdminHandler struct {
	AdminService admin.AdminService
}

func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.AdminService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AddDoctorHandler accepts a multipart form: scalar fields plus JSON-encoded
// "speciality", "address" and "availability" fields and an "image" file.
func (h *AdminHandler) AddDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	fees, err := strconv.ParseFloat(c.PostForm("fees"), 64)
	if err != nil || fees < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fees"})
		return
	}

	data := models.DoctorRegistrationData{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Password:   c.PostForm("password"),
		Degree:     c.PostForm("degree"),
		Experience: c.PostForm("experience"),
		About:      c.PostForm("about"),
		Fees:       fees,
	}
	if raw := c.PostForm("speciality"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data.Speciality); err != nil {
			// A bare string is accepted as a single speciality.
			data.Speciality = []string{raw}
		}
	}
	if raw := c.PostForm("address"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data.Address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address"})
			return
		}
	}
	if raw := c.PostForm("availability"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data.Availability); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability"})
			return
		}
	}

	if tempPath, err := saveUploadedTemp(c, "image"); err == nil {
		data.ImagePath = tempPath
		defer os.Remove(tempPath)
	}

	doc, err := h.AdminService.AddDoctor(data)
	if err != nil {
		logger.Error("Add doctor failed", zap.String("email", data.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *AdminHandler) AllDoctorsHandler(c *gin.Context) {
	doctors, err := h.AdminService.AllDoctors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (h *AdminHandler) ChangeAvailabilityHandler(c *gin.Context) {
	var req struct {
		DocID string `json:"docId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available, err := h.AdminService.ChangeAvailability(req.DocID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (h *AdminHandler) DeleteDoctorHandler(c *gin.Context) {
	docID := c.Param("docId")
	if err := h.AdminService.DeleteDoctor(docID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

func (h *AdminHandler) AllAppointmentsHandler(c *gin.Context) {
	appts, err := h.AdminService.AllAppointments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AdminHandler) CancelAppointmentHandler(c *gin.Context) {
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.AdminService.CancelAppointment(req.AppointmentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

func (h *AdminHandler) CompleteAppointmentHandler(c *gin.Context) {
	var req struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.AdminService.CompleteAppointment(req.AppointmentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment completed"})
}

func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	dash, err := h.AdminService.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *AdminHandler) PatientsHandler(c *gin.Context) {
	patients, err := h.AdminService.Patients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// UploadPrescriptionHandler accepts a multipart form with "appointmentId",
// an optional "followUpDate" and the prescription "file".
func (h *AdminHandler) UploadPrescriptionHandler(c *gin.Context) {
	appointmentID := c.PostForm("appointmentId")
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointmentId is required"})
		return
	}
	followUpDate := c.PostForm("followUpDate")

	tempPath, err := saveUploadedTemp(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prescription file not provided"})
		return
	}
	defer os.Remove(tempPath)

	url, err := h.AdminService.UploadPrescription(appointmentID, followUpDate, tempPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescription": url})
}

func (h *AdminHandler) PurgePatientsHandler(c *gin.Context) {
	removed, err := h.AdminService.PurgePatients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
