// file: internals/helpers/apperror.go
package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error taxonomy
   - ValidationError  : malformed/missing field in a submission (never retried)
   - StorageError     : underlying store read/write failure
   - ConfigurationError: store unreachable / secret missing
=================================*/

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: invalid or missing", e.Field)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

type ConfigurationError struct {
	What string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.What)
}

func NewConfigurationError(what string) *ConfigurationError {
	return &ConfigurationError{What: what}
}

// JsonAppError maps a taxonomy error to the standard error envelope.
func JsonAppError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, map[string][]string{
			ve.Field: {ve.Error()},
		})
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return JsonError(c, fiber.StatusServiceUnavailable, ce.Error())
	}
	var se *StorageError
	if errors.As(err, &se) {
		return JsonError(c, fiber.StatusInternalServerError, "Storage operation failed")
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
