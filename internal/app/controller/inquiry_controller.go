package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/internal/app/service"
	apperrors "github.com/malabartrails/tours-backend/internal/errors"
	"github.com/malabartrails/tours-backend/internal/middleware"
)

type InquiryController struct {
	inquiryService service.InquiryService
}

func NewInquiryController(inquiryService service.InquiryService) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
	}
}

type CreateInquiryRequest struct {
	Name       string `json:"name" binding:"required,max=120"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone" binding:"omitempty,max=30"`
	Message    string `json:"message" binding:"max=4000"`
	TourSlug   string `json:"tour_slug" binding:"max=255"`
	Travelers  int    `json:"travelers" binding:"gte=0,lte=100"`
	TravelDate string `json:"travel_date"`
}

// CreateInquiry stores a visitor enquiry
// POST /api/v1/inquiries
func (ctrl *InquiryController) CreateInquiry(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid inquiry request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	inquiry, err := ctrl.inquiryService.Submit(c.Request.Context(), service.InquiryInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		TourSlug:   req.TourSlug,
		Travelers:  req.Travelers,
		TravelDate: req.TravelDate,
	})
	if err != nil {
		var verr *service.InquiryValidationError
		switch {
		case errors.As(err, &verr):
			if _, missing := verr.Fields["contact"]; missing && len(verr.Fields) == 1 {
				apperrors.BadRequest(c, apperrors.InquiryContactEmpty, verr.Fields["contact"])
				return
			}
			apperrors.RespondWithValidationError(c, verr.Fields)
		case errors.Is(err, service.ErrInquiryRateLimited):
			apperrors.TooManyRequests(c, apperrors.InquiryRateLimited, "You have sent several enquiries recently. Please try again later")
		default:
			log.Error("Failed to submit inquiry", err, map[string]interface{}{
				"tour_slug": req.TourSlug,
			})
			info := apperrors.ParseError(err, "submit inquiry")
			apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Thank you, we will be in touch shortly",
		"inquiry_id": inquiry.ID,
	})
}
