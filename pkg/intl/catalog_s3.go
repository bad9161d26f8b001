package intl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API the catalog loader uses.
// *s3.Client satisfies it.
type S3Client interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config configures the S3 client catalogs are read with.
type S3Config struct {
	Bucket    string `env:"INTL_S3_BUCKET"`
	Prefix    string `env:"INTL_S3_PREFIX" envDefault:"locales/"`
	AccessKey string `env:"INTL_S3_ACCESS_KEY"`
	SecretKey string `env:"INTL_S3_SECRET_KEY"`
	Endpoint  string `env:"INTL_S3_ENDPOINT"`
	Region    string `env:"INTL_S3_REGION" envDefault:"us-east-1"`
	PathStyle bool   `env:"INTL_S3_PATH_STYLE"`
}

// NewS3Client builds an S3 client with static credentials. A custom endpoint
// enables S3-compatible services such as MinIO.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}
	return s3.New(s3.Options{}, opts...)
}

// LoadMessagesS3 reads message catalogs stored under prefix in bucket, using
// the same layout as LoadMessagesFS relative to the prefix.
func LoadMessagesS3(ctx context.Context, client S3Client, bucket, prefix string) (Messages, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	messages := Messages{}

	pages := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := strings.TrimPrefix(key, prefix)
			if name == "" || strings.HasSuffix(name, "/") {
				continue
			}

			data, err := getObject(ctx, client, bucket, key)
			if err != nil {
				return nil, err
			}
			if err := addCatalogFile(messages, name, data); err != nil {
				return nil, err
			}
		}
	}

	return messages, nil
}

// WithMessagesS3 loads catalogs from S3 into the configuration.
func WithMessagesS3(ctx context.Context, client S3Client, bucket, prefix string) ConfigOption {
	return func(c *Config) error {
		messages, err := LoadMessagesS3(ctx, client, bucket, prefix)
		if err != nil {
			return err
		}
		return WithMessages(messages)(c)
	}
}

func getObject(ctx context.Context, client S3Client, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, wrapS3Error(err))
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCatalogFetch, key, err)
	}
	return data, nil
}

// wrapS3Error maps S3 failures onto catalog sentinel errors.
func wrapS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %v", ErrCatalogNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%w: %v", ErrCatalogNotFound, err)
	}

	return fmt.Errorf("%w: %v", ErrCatalogFetch, err)
}
