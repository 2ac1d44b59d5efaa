package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/core/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/SscSPs/videotube/internal/handlers"
	"github.com/SscSPs/videotube/internal/middleware"
	"github.com/SscSPs/videotube/internal/platform/config"
	"github.com/SscSPs/videotube/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeMediaStore stands in for S3 and consumes the temp file like the real relay.
type fakeMediaStore struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (f *fakeMediaStore) Upload(_ context.Context, localPath string, kind domain.AssetKind) (*domain.UploadedAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = os.Remove(localPath)
	url := "https://cdn.test/" + string(kind) + "/" + filepath.Base(localPath)
	f.uploaded = append(f.uploaded, url)
	return &domain.UploadedAsset{URL: url}, nil
}

func (f *fakeMediaStore) DeleteByURL(_ context.Context, url string, _ domain.AssetKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return nil
}

var _ portssvc.MediaStore = (*fakeMediaStore)(nil)

type testServer struct {
	router *gin.Engine
	cfg    *config.Config
	users  *testutil.MemoryUserRepository
	media  *fakeMediaStore
}

// newTestServer wires the real services over an in-memory user store and
// replaces the remaining services with the given overrides.
func newTestServer(t *testing.T, override func(*portssvc.ServiceContainer)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())

	cfg := testutil.NewTestConfig()
	cfg.UploadTempDir = t.TempDir()
	cfg.CookieSecure = false

	users := testutil.NewMemoryUserRepository()
	media := &fakeMediaStore{}
	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{UserRepo: users}, services.WithMediaStore(media))
	if override != nil {
		override(container)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(nil))
	handlers.RegisterRoutes(r, cfg, container, handlers.RouterOptions{})

	return &testServer{router: r, cfg: cfg, users: users, media: media}
}

type requestOption func(*http.Request)

func withBearer(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookie(name, value string) requestOption {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func (s *testServer) do(t *testing.T, method, path string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// envelope decodes a success response, re-decoding data into out when given.
func envelope(t *testing.T, w *httptest.ResponseRecorder, out any) dto.APIResponse {
	t.Helper()
	var raw struct {
		dto.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(raw.Data, out))
	}
	return raw.APIResponse
}

func errorEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func cookieValue(w *httptest.ResponseRecorder, name string) (string, bool) {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}
