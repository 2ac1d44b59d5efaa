package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/SscSPs/videotube/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respond writes the success envelope.
func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.NewAPIResponse(status, data, message))
}

// respondError writes the error envelope for err. Internal causes are logged, never sent.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	} else {
		logger.Debug("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, apperrors.PublicMessage(err)))
}

// respondBindError reports a binding failure as a 400 listing the offending fields.
func respondBindError(c *gin.Context, err error) {
	details := []string{}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			details = append(details, fieldMessage(fe))
		}
	}
	message := "Invalid request payload"
	if len(details) > 0 {
		message = strings.Join(details, "; ")
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Failed to bind request", slog.String("error", err.Error()))
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, details...))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "uuid":
		return fe.Field() + " must be a valid id"
	case "min":
		return fe.Field() + " must contain at least " + fe.Param() + " item(s)"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// currentUserID returns the id set by the auth middleware. Routes using it sit behind AuthMiddleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.Unauthorized("Unauthorized request"))
	}
	return userID, ok
}

// viewerID returns the caller's id on optionally authenticated routes, or "".
func viewerID(c *gin.Context) string {
	userID, _ := middleware.GetUserIDFromContext(c)
	return userID
}
