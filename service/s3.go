package service

import (
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service signs download links for objects in the asset bucket. Signing is
// done locally; the service never reads or writes objects.
type S3Service struct {
	presigner *s3.PresignClient
	bucket    string
}

func NewS3Service(ctx context.Context, bucket, region, accessKeyID, secretAccessKey string) (*S3Service, error) {
	if bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET is required")
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &S3Service{
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:    bucket,
	}, nil
}

func (s *S3Service) Bucket() string {
	return s.bucket
}

// PresignedGetURL signs a GET for key valid for expiry. A non-empty downloadName
// is sent back as the Content-Disposition filename; non-ASCII names are RFC 2231 encoded.
func (s *S3Service) PresignedGetURL(ctx context.Context, key string, expiry time.Duration, downloadName string) (string, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if downloadName != "" {
		if disposition := mime.FormatMediaType("attachment", map[string]string{"filename": downloadName}); disposition != "" {
			input.ResponseContentDisposition = aws.String(disposition)
		}
	}
	signed, err := s.presigner.PresignGetObject(ctx, input, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return signed.URL, nil
}
