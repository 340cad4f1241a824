package remote

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	pmconfig "plantmate/internal/config"
	"plantmate/internal/pm"
)

// S3Fetcher fetches collections published as JSON documents in an S3 bucket:
// <prefix>/<collection>.json. Households that sync their data through a
// bucket instead of running the backend use this remote type.
type S3Fetcher struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Fetcher creates an S3-backed fetcher from the remote config.
// When static credentials are configured they take precedence over the
// ambient AWS credential chain.
func NewS3Fetcher(ctx context.Context, cfg pmconfig.RemoteConfig) (*S3Fetcher, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 remote requires s3_bucket to be set")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3Region))
	}
	if cfg.S3AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &S3Fetcher{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		prefix: strings.Trim(cfg.S3Prefix, "/"),
	}, nil
}

// FetchCollection downloads <prefix>/<collection>.json from the bucket.
func (f *S3Fetcher) FetchCollection(ctx context.Context, collection string) ([]byte, error) {
	key := collection + ".json"
	if f.prefix != "" {
		key = f.prefix + "/" + key
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &f.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching s3://%s/%s: %w", f.bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading s3://%s/%s: %w", f.bucket, key, err)
	}
	return body, nil
}

// Compile-time check that S3Fetcher implements the pm.Fetcher interface
var _ pm.Fetcher = (*S3Fetcher)(nil)
