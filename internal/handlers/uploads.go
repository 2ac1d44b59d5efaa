package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploader stores multipart files in the temp dir for the media relay to pick up.
type uploader struct {
	tempDir  string
	maxBytes int64
}

// limitBody caps multipart request bodies.
func (u uploader) limitBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if u.maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, u.maxBytes)
		}
		c.Next()
	}
}

// save writes the form file field to a temp file and returns its path, or "" when the field is absent.
func (u uploader) save(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", apperrors.NewAppError(http.StatusRequestEntityTooLarge, "Uploaded file is too large", apperrors.ErrValidation)
		}
		return "", apperrors.Validation(fmt.Sprintf("Invalid %s upload", field))
	}
	if u.maxBytes > 0 && fh.Size > u.maxBytes {
		return "", apperrors.NewAppError(http.StatusRequestEntityTooLarge, "Uploaded file is too large", apperrors.ErrValidation)
	}

	if err := os.MkdirAll(u.tempDir, 0o750); err != nil {
		return "", apperrors.Internal("Failed to store upload", err)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(u.tempDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", apperrors.Internal("Failed to store upload", err)
	}
	return dst, nil
}

// cleanup removes temp files the media relay did not consume. Missing files are fine.
func cleanup(c *gin.Context, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to remove temp upload",
				slog.String("path", p), slog.String("error", err.Error()))
		}
	}
}
