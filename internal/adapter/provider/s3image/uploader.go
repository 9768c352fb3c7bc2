// Package s3image hosts uploaded campground images in an S3-compatible bucket.
package s3image

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/heartmarshall/yelpcamp/internal/config"
	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// allowedExtensions are matched case-insensitively.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// objectPutter is the subset of *s3.Client the uploader needs.
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader stages an uploaded file on local disk and puts it in the bucket.
type Uploader struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
	stagingDir    string
	timeout       time.Duration
	now           func() time.Time
	log           *slog.Logger
}

// New creates an Uploader with an S3 client built from cfg. A non-empty
// cfg.Endpoint selects a custom endpoint with path-style addressing (MinIO).
func New(ctx context.Context, cfg config.ImagesConfig, logger *slog.Logger) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("s3image: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewWithClient(client, cfg, logger), nil
}

// NewWithClient creates an Uploader over an existing client (for testing).
func NewWithClient(client objectPutter, cfg config.ImagesConfig, logger *slog.Logger) *Uploader {
	stagingDir := cfg.StagingDir
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	return &Uploader{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		stagingDir:    stagingDir,
		timeout:       cfg.Timeout,
		now:           time.Now,
		log:           logger.With("adapter", "s3image"),
	}
}

// CheckName rejects names whose extension is not an accepted image type.
func CheckName(name string) error {
	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
		return fmt.Errorf("s3image: %q: %w", name, domain.ErrUnsupportedImageType)
	}
	return nil
}

// CheckName is the package-level CheckName, for callers holding an Uploader.
func (u *Uploader) CheckName(name string) error {
	return CheckName(name)
}

// StagedName is the local and remote name of an upload: the nanosecond
// timestamp followed by the client supplied base name.
func StagedName(at time.Time, original string) string {
	return strconv.FormatInt(at.UnixNano(), 10) + filepath.Base(original)
}

// Upload validates, stages and stores img, returning its public URL.
// The name check runs before any disk or network I/O.
func (u *Uploader) Upload(ctx context.Context, img domain.ImageFile) (string, error) {
	if err := CheckName(img.Name); err != nil {
		return "", err
	}

	key := StagedName(u.now(), img.Name)
	staged := filepath.Join(u.stagingDir, key)

	if err := stage(staged, img.Body); err != nil {
		return "", fmt.Errorf("s3image: stage %s: %w: %w", key, domain.ErrUpload, err)
	}
	defer func() {
		if err := os.Remove(staged); err != nil && !os.IsNotExist(err) {
			u.log.WarnContext(ctx, "remove staged image", slog.String("path", staged), slog.String("error", err.Error()))
		}
	}()

	f, err := os.Open(staged)
	if err != nil {
		return "", fmt.Errorf("s3image: open %s: %w: %w", key, domain.ErrUpload, err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	start := time.Now()
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(img.Name)),
	})
	if err != nil {
		u.log.WarnContext(ctx, "s3 put failed", slog.String("key", key), slog.String("error", err.Error()))
		return "", fmt.Errorf("s3image: put %s: %w: %w", key, domain.ErrUpload, err)
	}

	u.log.InfoContext(ctx, "image uploaded",
		slog.String("key", key),
		slog.Duration("duration", time.Since(start)),
	)

	return u.publicBaseURL + "/" + url.PathEscape(key), nil
}

func stage(path string, body io.Reader) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
