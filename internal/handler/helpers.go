package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var errInvalidBoolToken = errors.New("invalid boolean token")

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	value := strings.TrimSpace(c.Params(key))
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", key)
	}
	return uint(parsed), nil
}

// parseQueryInt reads an integer query value leniently: blank or malformed
// input yields 0 so pagination falls back to its defaults instead of failing.
func parseQueryInt(c *fiber.Ctx, key string) int {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

// decodeParam returns a path parameter with percent-encoding resolved, so
// category segments such as "Participaci%C3%B3n" round-trip correctly.
func decodeParam(c *fiber.Ctx, key string) (string, error) {
	value, err := url.QueryUnescape(c.Params(key))
	if err != nil {
		return "", fmt.Errorf("invalid %s parameter", key)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("missing %s parameter", key)
	}
	return value, nil
}

// parseBoolToken accepts only the allow-listed boolean spellings of query
// parameters: true/1 and false/0, case-insensitively.
func parseBoolToken(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, errInvalidBoolToken
	}
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// validationDetails flattens validator errors into a field → message map for
// the 422 response body.
func validationDetails(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		details[fieldError.Field()] = validationMessage(fieldError)
	}
	return details
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldError.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fieldError.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldError.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fieldError.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldError.Tag())
	}
}
