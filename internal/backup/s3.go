// Package backup uploads exported dashboard documents to S3.
package backup

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/grafctl/grafctl/internal/ui"
)

// Options configures the backup destination
type Options struct {
	// Bucket is the target S3 bucket
	Bucket string

	// Prefix is the object key prefix, e.g. "dashboards"
	Prefix string

	// Region is the AWS region
	Region string

	// Endpoint is an optional S3-compatible endpoint override
	// (MinIO, LocalStack). When set, path-style addressing and static
	// test credentials are used unless real ones are configured.
	Endpoint string
}

// objectPutter is the slice of the S3 client the uploader needs
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes dashboard JSON documents to a bucket
type Uploader struct {
	client objectPutter
	opts   Options
}

// NewUploader creates an uploader for the given destination
func NewUploader(ctx context.Context, opts Options) (*Uploader, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("backup bucket is required (set --bucket or backup.bucket in the global config)")
	}

	cfg, err := buildAWSConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.UsePathStyle = true // Required for MinIO/LocalStack and bucket names with dots
		}
	})

	return &Uploader{client: client, opts: opts}, nil
}

func buildAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}

	if opts.Endpoint != "" {
		loadOpts = append(loadOpts,
			awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:           opts.Endpoint,
						SigningRegion: opts.Region,
					}, nil
				})),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
		)
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// PutDashboard uploads one dashboard document under <prefix>/<uid>.json
func (u *Uploader) PutDashboard(ctx context.Context, uid string, document []byte) error {
	key := path.Join(u.opts.Prefix, uid+".json")

	ui.Debug("uploading s3://%s/%s (%d bytes)", u.opts.Bucket, key, len(document))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.opts.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(document),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload dashboard %s: %w", uid, err)
	}

	return nil
}
