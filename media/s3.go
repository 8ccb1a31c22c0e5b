package media

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps media objects in an S3 bucket served from a public base
// URL. The object key doubles as the file identifier.
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Store(ctx context.Context, bucket, region, publicBaseURL string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 media backend requires a bucket")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &S3Store{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, fileName string, content []byte, folder string) (*Descriptor, error) {
	key := strings.Trim(folder, "/") + "/" + fileName

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(http.DetectContentType(content)),
	})
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", key, err)
	}

	return &Descriptor{
		FileID: key,
		URL:    fmt.Sprintf("%s/%s", s.publicBaseURL, key),
		Name:   fileName,
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, fileID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", fileID, err)
	}
	return nil
}
