package errors

// Error codes returned in ErrorResponse.Error.
// Format: CATEGORY_SPECIFIC_DETAIL. The site maps these to copy, so they are stable.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"
	ValidationTooLong       = "VALIDATION_TOO_LONG"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Tours (TOUR_) ====================
	TourNotFound        = "TOUR_NOT_FOUND"
	TourSlugExists      = "TOUR_SLUG_EXISTS"
	TourDayNumberExists = "TOUR_DAY_NUMBER_EXISTS"

	// ==================== Taxonomy (CATEGORY_) ====================
	CategoryNotFound = "CATEGORY_NOT_FOUND"
	CategoryTooDeep  = "CATEGORY_TOO_DEEP"

	// ==================== Destinations (DESTINATION_) ====================
	DestinationNotFound = "DESTINATION_NOT_FOUND"

	// ==================== Inquiries (INQUIRY_) ====================
	InquiryRateLimited  = "INQUIRY_RATE_LIMITED"
	InquiryContactEmpty = "INQUIRY_CONTACT_REQUIRED"

	// ==================== Throttling (RATE_) ====================
	RateLimitExceeded = "RATE_LIMIT_EXCEEDED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
	InternalConfigError   = "INTERNAL_CONFIG_ERROR"
)
