package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/videotube/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains routes that are never tracked.
var pathsToSkip = map[string]bool{
	"/health":       true,
	"/swagger/*any": true,
}

// eventName turns a route pattern into an event name, e.g. "/api/v1/videos/v/:videoId" -> "videos_v_videoId".
func eventName(method, fullPath string) string {
	path := strings.TrimPrefix(fullPath, "/api/v1")
	path = strings.Trim(path, "/")
	if path == "" {
		return ""
	}
	path = strings.ReplaceAll(path, ":", "")
	path = strings.ReplaceAll(path, "/", "_")
	return strings.ToLower(method) + "_" + path
}

// PosthogMiddleware tracks successful authenticated API calls.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.FullPath()] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		name := eventName(c.Request.Method, c.FullPath())
		if name == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, name, props)
	}
}

// PosthogEvent sends a custom event for distinctID, used where the caller is not yet authenticated
// (registration, login).
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, distinctID, event string, properties map[string]any) {
	if !posthogClient.IsInitialized() || distinctID == "" {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path
	posthogClient.Enqueue(distinctID, event, properties)
}
