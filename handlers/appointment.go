package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "petclinic/database/repository/appointment"
	"petclinic/models"
	"petclinic/utils"
	"petclinic/validation"
)

// AppointmentHandler serves the /api/appointments endpoints.
type AppointmentHandler struct {
	Repo appointmentRepo.Repository
}

func NewAppointmentHandler(repo appointmentRepo.Repository) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo}
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid appointment request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid JSON format in request body"))
		return
	}

	if errs := validation.ValidateAppointment(req); len(errs) > 0 {
		logger.Warn("Appointment validation failed", zap.Strings("errors", errs))
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Validation failed: "+strings.Join(errs, "; ")))
		return
	}

	created, err := h.Repo.Create(c.Request.Context(), models.NewAppointment(req))
	if err != nil {
		h.respondStoreError(c, err, "", "Failed to create appointment. Please try again.")
		return
	}

	logger.Info("Appointment created",
		zap.String("id", created.ID),
		zap.String("date", created.AppointmentDate))
	c.JSON(http.StatusCreated, models.SuccessResponse("Appointment created successfully", created))
}

// GetAllAppointmentsHandler handles GET /api/appointments.
func (h *AppointmentHandler) GetAllAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	date := c.Query("date")
	if date != "" && !validation.IsValidDate(date) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid date format. Use YYYY-MM-DD"))
		return
	}

	opts := appointmentRepo.ListOptions{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
		Date:   date,
	}
	appts, err := h.Repo.List(c.Request.Context(), opts)
	if err != nil {
		h.respondStoreError(c, err, "", "Failed to retrieve appointments. Please try again.")
		return
	}

	message := fmt.Sprintf("Retrieved %d appointments successfully", len(appts))
	if date != "" {
		message = fmt.Sprintf("Retrieved %d appointments for date %s successfully", len(appts), date)
	}
	logger.Info("Appointments listed", zap.Int("count", len(appts)), zap.String("date", date))
	c.JSON(http.StatusOK, models.SuccessListResponse(message, appts, len(appts)))
}

// GetAppointmentHandler handles GET /api/appointments/:id. The date query
// parameter is the partition hint and is required regardless of whether the
// id exists.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	date, ok := h.requireDate(c)
	if !ok {
		return
	}

	appt, err := h.Repo.GetByIDAndDate(c.Request.Context(), id, date)
	if err != nil {
		notFound := fmt.Sprintf("Appointment with ID %s not found for date %s", id, date)
		h.respondStoreError(c, err, notFound, "Failed to retrieve appointment. Please try again.")
		return
	}

	logger.Info("Appointment retrieved", zap.String("id", id))
	c.JSON(http.StatusOK, models.SuccessResponse("Appointment retrieved successfully", appt))
}

// DeleteAppointmentHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	date, ok := h.requireDate(c)
	if !ok {
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id, date); err != nil {
		notFound := fmt.Sprintf("Appointment with ID %s not found for date %s", id, date)
		h.respondStoreError(c, err, notFound, "Failed to delete appointment. Please try again.")
		return
	}

	logger.Info("Appointment deleted", zap.String("id", id))
	c.JSON(http.StatusOK, models.SuccessResponse(
		fmt.Sprintf("Appointment with ID %s deleted successfully", id),
		gin.H{"id": id}))
}

func (h *AppointmentHandler) requireDate(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(
			"Appointment date query parameter is required (format: YYYY-MM-DD)"))
		return "", false
	}
	if !validation.IsValidDate(date) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid date format. Use YYYY-MM-DD"))
		return "", false
	}
	return date, true
}

// respondStoreError maps a store adapter error to the fixed status table.
// Configuration problems never leak credential details to the caller.
func (h *AppointmentHandler) respondStoreError(c *gin.Context, err error, notFoundMsg, failureMsg string) {
	logger := utils.GetLogger()
	logger.Error("Appointment store error", zap.Error(err))

	switch {
	case utils.IsNotFound(err):
		c.JSON(http.StatusNotFound, models.ErrorResponse(notFoundMsg))
	case utils.IsConfigError(err):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(
			"Database configuration error. Please check environment variables."))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(failureMsg))
	}
}
