package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ops-dashboard/internal/config"
	"ops-dashboard/internal/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrInvalidURI = errors.New("object uri must look like s3://bucket/key")

// maxObjectSize caps how much of an object is read into memory
const maxObjectSize = 64 << 20

// Client reads objects from S3
type Client struct {
	s3     *s3.Client
	logger *observability.Logger
}

// NewClient builds an S3 client. Static credentials are used when both keys
// are set; otherwise the default AWS credential chain applies.
func NewClient(ctx context.Context, cfg config.S3Config, logger *observability.Logger) (*Client, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		s3:     s3.NewFromConfig(awsCfg),
		logger: logger,
	}, nil
}

// ParseURI splits s3://bucket/key into its parts
func ParseURI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", ErrInvalidURI
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", ErrInvalidURI
	}
	return bucket, key, nil
}

// IsURI reports whether path points at S3 rather than the local disk
func IsURI(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// Fetch downloads the object at an s3:// uri
func (c *Client) Fetch(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "s3_bucket", Value: bucket},
		observability.Field{Key: "s3_key", Value: key},
	)

	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to get object", err)
		return nil, fmt.Errorf("failed to get object %s: %w", uri, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", uri, err)
	}
	if len(data) > maxObjectSize {
		return nil, fmt.Errorf("object %s is larger than %d bytes", uri, maxObjectSize)
	}

	c.logger.Info(ctx, fmt.Sprintf("downloaded %d bytes", len(data)))
	return data, nil
}
