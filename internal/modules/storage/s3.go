package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/mx-space/portfolio/internal/config"
)

// S3 stores objects in an S3-compatible bucket.
type S3 struct {
	client    *s3.Client
	bucket    string
	prefix    string
	publicURL string
}

func NewS3(opts config.S3Options) (*S3, error) {
	bucket := strings.TrimSpace(opts.Bucket)
	region := strings.TrimSpace(opts.Region)
	accessKey := strings.TrimSpace(opts.AccessKeyID)
	secretKey := strings.TrimSpace(opts.SecretAccessKey)
	if bucket == "" || region == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	endpoint := strings.TrimSuffix(strings.TrimSpace(opts.Endpoint), "/")
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	if endpoint != "" {
		if parsed, err := url.Parse(endpoint); err != nil || parsed.Host == "" {
			return nil, fmt.Errorf("invalid s3 endpoint: %s", endpoint)
		}
	}

	// Custom endpoints (MinIO, R2) generally need path-style addressing.
	pathStyle := opts.PathStyleAccess || endpoint != ""

	client := s3.New(s3.Options{
		Region:       region,
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: pathStyle,
		BaseEndpoint: optionalString(endpoint),
	})

	return &S3{
		client:    client,
		bucket:    bucket,
		prefix:    strings.Trim(strings.TrimSpace(opts.Prefix), "/"),
		publicURL: publicBaseURL(opts.CustomDomain, endpoint, bucket, region, pathStyle),
	}, nil
}

func (s *S3) Name() string { return DriverS3 }

func (s *S3) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	objectKey := s.objectKey(key)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        r,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 put %s: %w", objectKey, err)
	}
	return s.publicURL + "/" + objectKey, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	objectKey := s.objectKey(key)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return ErrNotFound
		}
		return fmt.Errorf("s3 delete %s: %w", objectKey, err)
	}
	return nil
}

func (s *S3) objectKey(key string) string {
	key = strings.TrimPrefix(strings.ReplaceAll(key, "\\", "/"), "/")
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

func publicBaseURL(customDomain, endpoint, bucket, region string, pathStyle bool) string {
	if domain := strings.TrimRight(strings.TrimSpace(customDomain), "/"); domain != "" {
		if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
			domain = "https://" + domain
		}
		return domain
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", region)
	}
	if pathStyle {
		return endpoint + "/" + bucket
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return endpoint + "/" + bucket
	}
	return parsed.Scheme + "://" + bucket + "." + parsed.Host
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return aws.String(v)
}
