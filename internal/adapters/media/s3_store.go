package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/platform/config"
	"github.com/SscSPs/videotube/internal/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// objectAPI is the subset of the S3 client used by the store.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store relays uploaded temp files to an S3-compatible bucket.
type S3Store struct {
	client        objectAPI
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

var _ portssvc.MediaStore = (*S3Store)(nil)

// NewS3Store builds a store from configuration. Static credentials are used when provided,
// otherwise the default AWS credential chain applies.
func NewS3Store(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return newS3Store(client, cfg.Bucket, publicBaseURL, logger), nil
}

func newS3Store(client objectAPI, bucket, publicBaseURL string, logger *slog.Logger) *S3Store {
	return &S3Store{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload puts the file at localPath into the bucket under a key derived from kind.
// The local file is removed whether or not the upload succeeds.
func (s *S3Store) Upload(ctx context.Context, localPath string, kind domain.AssetKind) (*domain.UploadedAsset, error) {
	defer s.removeLocal(localPath)

	if localPath == "" {
		return nil, errors.New("no local file to upload")
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", filepath.Base(localPath), err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat upload: %w", err)
	}

	contentType := utils.DetectContentType(localPath)
	key := objectKey(kind, localPath, time.Now().UTC())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s to storage: %w", kind, err)
	}

	s.logger.Debug("Uploaded asset", slog.String("key", key), slog.String("content_type", contentType), slog.Int64("size", info.Size()))

	return &domain.UploadedAsset{
		URL:         s.publicBaseURL + "/" + key,
		Key:         key,
		ContentType: contentType,
		Size:        info.Size(),
	}, nil
}

// DeleteByURL removes an asset previously returned by Upload. URLs outside the bucket are ignored.
func (s *S3Store) DeleteByURL(ctx context.Context, url string, kind domain.AssetKind) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		s.logger.Debug("Skipping delete of foreign asset", slog.String("url", url), slog.String("kind", string(kind)))
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", kind, key, err)
	}
	return nil
}

func (s *S3Store) keyFromURL(url string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if url == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

func (s *S3Store) removeLocal(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("Failed to remove temp upload", slog.String("path", path), slog.Any("error", err))
	}
}

func objectKey(kind domain.AssetKind, localPath string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(localPath))
	return fmt.Sprintf("%s/%04d/%02d/%s%s", kind, now.Year(), int(now.Month()), uuid.NewString(), ext)
}
