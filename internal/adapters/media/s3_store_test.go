package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	putErr    error
	deleteErr error
	puts      []string
	bodies    []string
	deletes   []string
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, *in.Key)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deletes = append(f.deletes, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tempUpload(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUploadSuccessRemovesTempFile(t *testing.T) {
	api := &fakeObjectAPI{}
	store := newS3Store(api, "media", "http://cdn.local/media/", testLogger())
	path := tempUpload(t, "clip.MP4", "video-bytes")

	asset, err := store.Upload(context.Background(), path, domain.AssetVideo)
	require.NoError(t, err)

	require.Len(t, api.puts, 1)
	assert.True(t, strings.HasPrefix(api.puts[0], "videos/"))
	assert.True(t, strings.HasSuffix(api.puts[0], ".mp4"))
	assert.Equal(t, "video-bytes", api.bodies[0])
	assert.Equal(t, "http://cdn.local/media/"+api.puts[0], asset.URL)
	assert.Equal(t, int64(len("video-bytes")), asset.Size)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "temp file must be removed after upload")
}

func TestUploadFailureRemovesTempFile(t *testing.T) {
	api := &fakeObjectAPI{putErr: errors.New("bucket unavailable")}
	store := newS3Store(api, "media", "http://cdn.local/media", testLogger())
	path := tempUpload(t, "avatar.png", "img")

	asset, err := store.Upload(context.Background(), path, domain.AssetAvatar)
	assert.Error(t, err)
	assert.Nil(t, asset)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "temp file must be removed after failed upload")
}

func TestUploadMissingFile(t *testing.T) {
	store := newS3Store(&fakeObjectAPI{}, "media", "http://cdn.local/media", testLogger())

	_, err := store.Upload(context.Background(), filepath.Join(t.TempDir(), "gone.png"), domain.AssetAvatar)
	assert.Error(t, err)

	_, err = store.Upload(context.Background(), "", domain.AssetAvatar)
	assert.Error(t, err)
}

func TestDeleteByURL(t *testing.T) {
	api := &fakeObjectAPI{}
	store := newS3Store(api, "media", "http://cdn.local/media", testLogger())

	require.NoError(t, store.DeleteByURL(context.Background(), "http://cdn.local/media/avatars/2024/01/a.png", domain.AssetAvatar))
	assert.Equal(t, []string{"avatars/2024/01/a.png"}, api.deletes)

	require.NoError(t, store.DeleteByURL(context.Background(), "https://lh3.googleusercontent.com/a/photo", domain.AssetAvatar))
	require.NoError(t, store.DeleteByURL(context.Background(), "", domain.AssetCoverImage))
	assert.Len(t, api.deletes, 1, "foreign and empty URLs are ignored")

	api.deleteErr = errors.New("denied")
	assert.Error(t, store.DeleteByURL(context.Background(), "http://cdn.local/media/videos/x.mp4", domain.AssetVideo))
}

func TestObjectKey(t *testing.T) {
	at := time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC)
	key := objectKey(domain.AssetThumbnail, "/tmp/upload/abc.JPG", at)
	assert.True(t, strings.HasPrefix(key, "thumbnails/2024/07/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}
