package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/patrykkrzal/skirent/internal/apperrors"
)

// Report binding failures under the json tag name so field keys match the
// domain validation errors (first_name, not FirstName).
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)

	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})
}

// respondError maps the error taxonomy to client-facing status codes.
// Validation, conflict and not-found errors carry machine-readable detail;
// persistence failures are logged and surfaced as a generic 500.
func respondError(ctx *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		notFoundErr   *apperrors.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		})
	case errors.As(err, &conflictErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	default:
		zap.L().Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondBindingError turns gin binding failures into the same per-field
// shape as ValidationError, reporting every failing field.
func respondBindingError(ctx *gin.Context, err error) {
	var verrs validator.ValidationErrors

	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))

		for _, fe := range verrs {
			fields[fe.Field()] = bindingReason(fe)
		}

		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fields,
		})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

func bindingReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
