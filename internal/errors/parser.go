package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorInfo is a code plus a message that is safe to show to visitors.
type ErrorInfo struct {
	Code    string
	Message string
}

// PostgreSQL SQLSTATE codes the parser understands.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// ParseError converts a store or service error into an ErrorInfo. Driver
// details such as table names and values never reach the message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	// 1. GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundInfo(context)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return parseDuplicateKeyError(err.Error())
	}

	// 2. PostgreSQL errors, typed first
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		detail := pgErr.ConstraintName + " " + pgErr.Message
		switch pgErr.Code {
		case pgUniqueViolation:
			return parseDuplicateKeyError(detail)
		case pgForeignKeyViolation:
			return parseForeignKeyError(detail, context)
		case pgNotNullViolation:
			return parseNotNullError(pgErr.ColumnName)
		case pgCheckViolation:
			return ErrorInfo{Code: ValidationInvalidInput, Message: "Some values are out of range"}
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 2-1. Text fallback for drivers that do not expose SQLSTATE (sqlite in tests)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStr, context)
	}
	if strings.Contains(errStrLower, "not null constraint") || strings.Contains(errStrLower, "violates not-null constraint") {
		return parseNotNullError(errStr)
	}

	// 3. Category depth guard from the model layer
	if strings.Contains(errStrLower, "parent must be a top-level category") {
		return ErrorInfo{Code: CategoryTooDeep, Message: "A category can only be nested one level deep"}
	}

	// 4. Network and connection errors
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "A backing service is unavailable. Please try again shortly",
		}
	}

	// 5. Default
	return ErrorInfo{
		Code:    InternalServerError,
		Message: defaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "idx_tour_day_number") || strings.Contains(errLower, "day_number") {
		return ErrorInfo{Code: TourDayNumberExists, Message: "This tour already has an entry for that day"}
	}
	if strings.Contains(errLower, "tours") && strings.Contains(errLower, "slug") {
		return ErrorInfo{Code: TourSlugExists, Message: "Another tour already uses this URL"}
	}
	if strings.Contains(errLower, "slug") {
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "This URL is already in use"}
	}
	if strings.Contains(errLower, "pkey") || strings.Contains(errLower, "primary key") {
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "This record already exists. Please try again"}
	}

	return ErrorInfo{Code: ResourceAlreadyExists, Message: "This record already exists"}
}

func parseForeignKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "still referenced") {
		return ErrorInfo{Code: ResourceConflict, Message: "Other content still refers to this record"}
	}
	if strings.Contains(errLower, "category_id") || strings.Contains(errLower, "parent_id") || strings.Contains(context, "category") {
		return ErrorInfo{Code: CategoryNotFound, Message: "The referenced category does not exist"}
	}
	if strings.Contains(errLower, "tour_id") {
		return ErrorInfo{Code: TourNotFound, Message: "The referenced tour does not exist"}
	}

	return ErrorInfo{Code: ResourceNotFound, Message: "A referenced record could not be found"}
}

func parseNotNullError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	switch {
	case strings.Contains(errLower, "title"):
		return ErrorInfo{Code: ValidationRequired, Message: "Title is required"}
	case strings.Contains(errLower, "name"):
		return ErrorInfo{Code: ValidationRequired, Message: "Name is required"}
	case strings.Contains(errLower, "url"):
		return ErrorInfo{Code: ValidationRequired, Message: "Image URL is required"}
	}
	return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
}

func notFoundInfo(context string) ErrorInfo {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "tour"):
		return ErrorInfo{Code: TourNotFound, Message: "Tour not found"}
	case strings.Contains(contextLower, "category"):
		return ErrorInfo{Code: CategoryNotFound, Message: "Category not found"}
	case strings.Contains(contextLower, "destination"):
		return ErrorInfo{Code: DestinationNotFound, Message: "Destination not found"}
	}
	return ErrorInfo{Code: ResourceNotFound, Message: "The requested content could not be found"}
}

func defaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create") || strings.Contains(contextLower, "submit"):
		return "We could not save this. Please try again later"
	case strings.Contains(contextLower, "search"):
		return "Search is unavailable right now. Please try again later"
	}
	return "Something went wrong. Please try again later"
}

// ParseAndRespond parses err and writes it with the given status.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
