package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/httpresp"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

// CatalogHandler serves the public service/staff listings plus the minimal
// admin endpoints needed to seed them.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) ListStaff(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not load staff.")
		return
	}

	httpresp.List(c, staff)
}

// --------- Admin ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	httpresp.Created(c, svc)
}

type CreateStaffRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	UserID    *uint  `json:"user_id"`
	ImageURL  string `json:"image_url"`
}

func (h *CatalogHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid staff payload.")
		return
	}

	staff := models.Staff{
		Name:      req.Name,
		Specialty: req.Specialty,
		UserID:    req.UserID,
		ImageURL:  req.ImageURL,
		Active:    true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff.")
		return
	}

	httpresp.Created(c, staff)
}
