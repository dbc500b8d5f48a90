// Package archive pushes downloaded regulatory documents into an
// S3-compatible bucket for long-term keeping.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/fdatrack/fdatrack/internal/logging"
	"github.com/fdatrack/fdatrack/internal/netx"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Options holds the bucket coordinates. Endpoint is the BaseEndpoint
// override for MinIO-style deployments; leave it empty for real AWS.
type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type Uploader struct {
	opts Options
	log  logging.Logger
}

func NewUploader(opts Options, log logging.Logger) *Uploader {
	return &Uploader{opts: opts, log: log.With("component", "archive")}
}

// storageKey partitions objects by date so bucket listings stay navigable.
func storageKey(docID string) string {
	d := time.Now()
	return fmt.Sprintf("form483/%d/%02d/%02d/%s-%v.pdf", d.Year(), d.Month(), d.Day(), docID, uuid.New())
}

func (u *Uploader) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(u.opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.opts.AccessKey,
			u.opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(u.opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// Store uploads a document body under a date-partitioned key and returns
// the key it was stored at.
func (u *Uploader) Store(ctx context.Context, docID string, body []byte) (string, error) {
	presignClient, err := u.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := u.opts.Bucket
	key := storageKey(docID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("presigning upload: %w", err)
	}

	if err := netx.UploadToPresignedURL(ctx, req.URL, body, "application/pdf"); err != nil {
		return "", err
	}

	u.log.Info(ctx, "document archived", "key", key, "bytes", len(body))
	return key, nil
}
