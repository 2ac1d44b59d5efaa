package utils

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	videoExtensions = []string{".mpg", ".mp2", ".mpeg", ".mpe", ".mpv", ".mp4"}
	imageExtensions = []string{".gif", ".jpeg", ".png", ".jpg"}
)

// IsVideoFile reports whether the file at path has an accepted video extension and video content.
func IsVideoFile(path string) bool {
	return hasExtension(path, videoExtensions) && detectedPrefix(path, "video/")
}

// IsImageFile reports whether the file at path has an accepted image extension and image content.
func IsImageFile(path string) bool {
	return hasExtension(path, imageExtensions) && detectedPrefix(path, "image/")
}

// DetectContentType returns the sniffed MIME type of the file, or application/octet-stream.
func DetectContentType(path string) string {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}
	return mt.String()
}

func hasExtension(path string, allowed []string) bool {
	return slices.Contains(allowed, strings.ToLower(filepath.Ext(path)))
}

func detectedPrefix(path, prefix string) bool {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for ; mt != nil; mt = mt.Parent() {
		if strings.HasPrefix(mt.String(), prefix) {
			return true
		}
	}
	return false
}
