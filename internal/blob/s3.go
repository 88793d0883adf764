package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/alexanderramin/journey/internal/domain"
)

const (
	putTimeout = 30 * time.Second
	getTimeout = 30 * time.Second
	// nameMetaKey carries the original file name in object metadata.
	nameMetaKey = "name"
)

// s3API is the subset of *s3.Client used here.
type s3API interface {
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, opts ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, in *s3.CreateBucketInput, opts ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config holds connection settings for any S3-compatible service
// (AWS S3, MinIO, R2, Spaces).
type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// Endpoint is optional; when set, path-style addressing is used.
	Endpoint string
	// Prefix is prepended to every object key.
	Prefix string
}

// S3 keeps payloads as objects named <prefix>/<id>.
type S3 struct {
	client s3API
	bucket string
	prefix string
}

var _ Store = (*S3)(nil)

// NewS3 connects to the bucket described by cfg, creating it if missing.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 blob store: bucket is required")
	}

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	store := newS3WithClient(client, cfg.Bucket, cfg.Prefix)
	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}
	slog.Debug("s3 blob store ready", "bucket", cfg.Bucket, "endpoint", cfg.Endpoint)
	return store, nil
}

func newS3WithClient(client s3API, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3) ensureBucket(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err == nil {
		return nil
	}
	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", s.bucket, err)
	}
	slog.Info("created S3 bucket", "bucket", s.bucket)
	return nil
}

func (s *S3) key(id string) string {
	if s.prefix == "" {
		return id
	}
	return path.Join(s.prefix, id)
}

func (s *S3) Put(ctx context.Context, b Blob) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, putTimeout)
	defer cancel()

	id := domain.NewID()
	mime := domain.CoalesceStr(b.MimeType, domain.DefaultMimeType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(id)),
		Body:          bytes.NewReader(b.Data),
		ContentLength: aws.Int64(b.Size()),
		ContentType:   aws.String(mime),
		Metadata:      map[string]string{nameMetaKey: url.QueryEscape(b.Name)},
	})
	if err != nil {
		return "", fmt.Errorf("uploading blob: %w", err)
	}
	return id, nil
}

func (s *S3) Get(ctx context.Context, id string) (*Blob, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, getTimeout)
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("downloading blob %s: %w", id, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, fmt.Errorf("reading blob %s: %w", id, err)
	}
	name, _ := url.QueryUnescape(out.Metadata[nameMetaKey])
	return &Blob{
		Name:     name,
		MimeType: aws.ToString(out.ContentType),
		Data:     data,
	}, true, nil
}

func (s *S3) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, putTimeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	if err != nil {
		return fmt.Errorf("deleting blob %s: %w", id, err)
	}
	return nil
}
