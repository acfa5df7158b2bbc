package content

import (
	"errors"

	"github.com/malabartrails/tours-backend/pkg/sanitize"
)

var ErrTourMissing = errors.New("tour record is missing")

// Resolver is stateless apart from its sanitiser; one instance can serve every request.
type Resolver struct {
	sanitizer *sanitize.Sanitizer
}

func NewResolver(sanitizer *sanitize.Sanitizer) *Resolver {
	if sanitizer == nil {
		sanitizer = sanitize.New(sanitize.Options{})
	}
	return &Resolver{sanitizer: sanitizer}
}

func (r *Resolver) Sanitizer() *sanitize.Sanitizer {
	return r.sanitizer
}
