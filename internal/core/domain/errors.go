package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrExtraction       = errors.New("text extraction failed")
	ErrModelConfig      = errors.New("model credential not configured")
	ErrModelInvocation  = errors.New("model invocation failed")
	ErrSchemaValidation = errors.New("model response does not match schema")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
