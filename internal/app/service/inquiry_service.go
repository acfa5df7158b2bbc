package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"github.com/malabartrails/tours-backend/pkg/util"
)

var (
	ErrInvalidInquiry     = errors.New("invalid inquiry")
	ErrInquiryRateLimited = errors.New("too many inquiries")
)

const (
	maxInquiryNameLength    = 120
	maxInquiryMessageLength = 4000
	maxInquiryTravelers     = 100
	minPhoneDigits          = 7
	maxPhoneDigits          = 15
)

// Limiter decides whether another submission is allowed for an identifier.
type Limiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
}

// InquiryValidationError lists the offending fields. It matches ErrInvalidInquiry.
type InquiryValidationError struct {
	Fields map[string]string
}

func (e *InquiryValidationError) Error() string {
	return fmt.Sprintf("invalid inquiry: %d field(s)", len(e.Fields))
}

func (e *InquiryValidationError) Is(target error) bool {
	return target == ErrInvalidInquiry
}

type InquiryInput struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	TourSlug   string
	Travelers  int
	TravelDate string
}

type InquiryService interface {
	Submit(ctx context.Context, input InquiryInput) (*model.Inquiry, error)
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	limiter     Limiter
}

// NewInquiryService wires the store and the rate limiter. A nil limiter disables limiting.
func NewInquiryService(inquiryRepo repository.InquiryRepository, limiter Limiter) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		limiter:     limiter,
	}
}

func (s *inquiryService) Submit(ctx context.Context, input InquiryInput) (*model.Inquiry, error) {
	inquiry, err := validateInquiry(input)
	if err != nil {
		logger.Warn("Inquiry rejected by validation", map[string]interface{}{
			"tour_slug": input.TourSlug,
			"error":     err.Error(),
		})
		return nil, err
	}

	identifier := inquiryIdentifier(inquiry)
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, identifier)
		if err != nil {
			// The limiter store being down should not lose a lead.
			logger.Error("Inquiry rate limiter unavailable, accepting submission", err)
		} else if !allowed {
			return nil, ErrInquiryRateLimited
		}
	}

	if err := s.inquiryRepo.Create(inquiry); err != nil {
		logger.Error("Failed to store inquiry", err, map[string]interface{}{
			"tour_slug": inquiry.TourSlug,
		})
		return nil, err
	}

	logger.Info("Inquiry received", map[string]interface{}{
		"inquiry_id": inquiry.ID,
		"tour_slug":  inquiry.TourSlug,
	})
	return inquiry, nil
}

func validateInquiry(input InquiryInput) (*model.Inquiry, error) {
	fields := map[string]string{}

	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		fields["name"] = "Name is required"
	case len([]rune(name)) > maxInquiryNameLength:
		fields["name"] = "Name is too long"
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := util.NormalizePhone(input.Phone)
	if email == "" && phone == "" {
		fields["contact"] = "Provide an email address or a phone number"
	}
	if email != "" && !util.IsValidEmail(email) {
		fields["email"] = "Email address is not valid"
	}
	if strings.TrimSpace(input.Phone) != "" {
		digits := util.CountDigits(phone)
		if digits < minPhoneDigits || digits > maxPhoneDigits {
			fields["phone"] = "Phone number is not valid"
		}
	}

	message := strings.TrimSpace(input.Message)
	if len([]rune(message)) > maxInquiryMessageLength {
		fields["message"] = "Message is too long"
	}
	if input.Travelers < 0 || input.Travelers > maxInquiryTravelers {
		fields["travelers"] = "Number of travellers is out of range"
	}

	travelDate := strings.TrimSpace(input.TravelDate)
	if travelDate != "" {
		if _, err := time.Parse("2006-01-02", travelDate); err != nil {
			fields["travel_date"] = "Travel date must be YYYY-MM-DD"
		}
	}

	if len(fields) > 0 {
		return nil, &InquiryValidationError{Fields: fields}
	}

	return &model.Inquiry{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
		TourSlug:   strings.TrimSpace(input.TourSlug),
		Travelers:  input.Travelers,
		TravelDate: travelDate,
	}, nil
}

// inquiryIdentifier keys the rate limit on the visitor's contact method.
func inquiryIdentifier(inquiry *model.Inquiry) string {
	if inquiry.Email != "" {
		return "email:" + inquiry.Email
	}
	return "phone:" + inquiry.Phone
}
