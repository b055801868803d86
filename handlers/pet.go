package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petclinic/models"
	"petclinic/services/storage"
	"petclinic/utils"
	"petclinic/validation"
)

// PetHandler serves the /api/pets endpoints.
type PetHandler struct {
	Store storage.PetStore
}

func NewPetHandler(store storage.PetStore) *PetHandler {
	return &PetHandler{Store: store}
}

// CreatePetHandler handles POST /api/pets.
func (h *PetHandler) CreatePetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid pet request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid JSON format in request body"))
		return
	}

	if errs := validation.ValidatePet(req); len(errs) > 0 {
		logger.Warn("Pet validation failed", zap.Strings("errors", errs))
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Validation failed: "+strings.Join(errs, "; ")))
		return
	}

	created, err := h.Store.Create(c.Request.Context(), models.NewPet(req))
	if err != nil {
		h.respondStoreError(c, err, "", "Failed to create pet. Please try again.")
		return
	}

	logger.Info("Pet created", zap.String("id", created.ID), zap.String("species", created.Species))
	c.JSON(http.StatusCreated, models.SuccessResponse("Pet created successfully", created))
}

// GetAllPetsHandler handles GET /api/pets.
func (h *PetHandler) GetAllPetsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	species := c.Query("species")
	limit := queryInt(c, "limit", 0)

	pets, err := h.Store.List(c.Request.Context(), limit, species)
	if err != nil {
		h.respondStoreError(c, err, "", "Failed to retrieve pets. Please try again.")
		return
	}

	message := fmt.Sprintf("Retrieved %d pets successfully", len(pets))
	if species != "" {
		message = fmt.Sprintf("Retrieved %d pets of species '%s' successfully", len(pets), species)
	}
	logger.Info("Pets listed", zap.Int("count", len(pets)), zap.String("species", species))
	c.JSON(http.StatusOK, models.SuccessListResponse(message, pets, len(pets)))
}

// GetPetHandler handles GET /api/pets/:id.
func (h *PetHandler) GetPetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	pet, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, err,
			fmt.Sprintf("Pet with ID %s not found", id),
			"Failed to retrieve pet. Please try again.")
		return
	}

	logger.Info("Pet retrieved", zap.String("id", id))
	c.JSON(http.StatusOK, models.SuccessResponse("Pet retrieved successfully", pet))
}

// DeletePetHandler handles DELETE /api/pets/:id.
func (h *PetHandler) DeletePetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		h.respondStoreError(c, err,
			fmt.Sprintf("Pet with ID %s not found", id),
			"Failed to delete pet. Please try again.")
		return
	}

	logger.Info("Pet deleted", zap.String("id", id))
	c.JSON(http.StatusOK, models.SuccessResponse(
		fmt.Sprintf("Pet with ID %s deleted successfully", id),
		gin.H{"id": id}))
}

func (h *PetHandler) respondStoreError(c *gin.Context, err error, notFoundMsg, failureMsg string) {
	logger := utils.GetLogger()
	logger.Error("Pet store error", zap.Error(err))

	switch {
	case utils.IsNotFound(err):
		c.JSON(http.StatusNotFound, models.ErrorResponse(notFoundMsg))
	case utils.IsConfigError(err):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(
			"Blob Storage configuration error. Please check environment variables."))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(failureMsg))
	}
}
