package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"family_tasks/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// report json names ("assignedTo") instead of Go field names in validation errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// parseID reads a positive int64 path parameter. On failure it writes 400 and returns false.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

type validatable interface {
	Validate() error
}

// decodeStrict decodes the body rejecting unknown fields, then runs the
// binding tags and the payload's own Validate.
func decodeStrict(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	if dec.More() {
		return &domain.ValidationError{Field: "body", Reason: "must contain a single JSON object"}
	}

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return err
	}
	if v, ok := dst.(validatable); ok {
		return v.Validate()
	}
	return nil
}

func bodyError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return &domain.ValidationError{Field: "body", Reason: "is required"}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &domain.ValidationError{Field: typeErr.Field, Reason: "has the wrong type"}
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return &domain.ValidationError{Field: field, Reason: "is not allowed"}
	default:
		return &domain.ValidationError{Field: "body", Reason: "is not valid JSON"}
	}
}

// validationMessage describes the first violation in err, if err is a validation error.
func validationMessage(err error) (string, bool) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error(), true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "", false
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required", true
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()), true
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()), true
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param()), true
	default:
		return fe.Field() + " is invalid", true
	}
}
