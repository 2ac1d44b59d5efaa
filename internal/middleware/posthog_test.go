package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/videotube/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEventName(t *testing.T) {
	tests := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/api/v1/videos/v/:videoId", "get_videos_v_videoId"},
		{http.MethodPost, "/api/v1/likes/toggle/t/:tweetId", "post_likes_toggle_t_tweetId"},
		{http.MethodGet, "/api/v1/", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, eventName(tt.method, tt.path), tt.path)
	}
}

func TestPosthogMiddlewareDisabledPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PosthogMiddleware(utils.InitializePosthogClient("", "", nil)))
	r.GET("/api/v1/videos", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
