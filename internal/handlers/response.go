package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cinemahub/cinemahub-api/internal/logger"
	"github.com/cinemahub/cinemahub-api/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report JSON field names, not Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// writeJSON writes the envelope with the given status.
func writeJSON(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// writeSuccess writes a 2xx envelope.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, models.Response{Success: true, Message: message, Data: data})
}

// writeError writes a failure envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Response{Success: false, Message: message})
}

// writeInternal logs the unexpected error and returns a generic 500.
func writeInternal(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeAndValidate decodes the JSON body into dst and runs its
// validation tags. A non-nil return was already written to w.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs []models.FieldError
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fieldErrs = append(fieldErrs, models.FieldError{
					Field:   fe.Field(),
					Message: constraintMessage(fe),
				})
			}
		}
		writeJSON(w, http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Validation error",
			Errors:  fieldErrs,
		})
		return false
	}
	return true
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please enter a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
