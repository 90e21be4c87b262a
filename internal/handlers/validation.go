package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validationFailedMessage heads every 422 produced by request binding.
const validationFailedMessage = "Validation failed"

var registerValidatorOnce sync.Once

// registerValidators teaches gin's validator about decimal fields and makes it
// report fields by their json (or form) names.
func registerValidators() {
	registerValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// decimalValue lets numeric tags such as gte and lte compare decimals.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// respondBindError converts a binding failure into a 422 with per-field messages.
// A body that is not JSON at all is a 400.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], validationMessage(fe))
		}
		logger.Warn("Request validation failed", slog.Any("fields", fields))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Success: false, Message: validationFailedMessage, Errors: fields})
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		logger.Warn("Request field has wrong type", slog.String("field", field))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Success: false,
			Message: validationFailedMessage,
			Errors:  map[string][]string{field: {fmt.Sprintf("The %s field has an invalid type.", humanize(field))}},
		})
		return
	}

	logger.Warn("Malformed request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: "Malformed request: " + err.Error()})
}

func validationMessage(fe validator.FieldError) string {
	name := humanize(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "numeric":
		return fmt.Sprintf("The %s field must be a number.", name)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	case "datetime":
		return fmt.Sprintf("The %s field must match the format %s.", name, dateLayoutHint(fe.Param()))
	case "max":
		if isString {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", name, fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("The %s field must be at least %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", name, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s.", name, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s.", name, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s.", name, fe.Param())
	}
	return fmt.Sprintf("The %s field is invalid.", name)
}

// humanize turns "currency_id" into "currency id".
func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func dateLayoutHint(layout string) string {
	if layout == "2006-01-02" {
		return "Y-m-d"
	}
	return layout
}
