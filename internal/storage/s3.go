package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

// S3Config holds the settings for an S3 bucket
type S3Config struct {
	Bucket    string
	Region    string
	Prefix    string
	Endpoint  string // optional, for S3 compatible services
	AccessKey string
	SecretKey string
}

// putObjectAPI is the part of the S3 client used by S3Store
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads images to an S3 bucket
type S3Store struct {
	client putObjectAPI
	cfg    S3Config
}

// NewS3Store builds an S3 client from cfg. Static credentials are used when
// an access key is configured, otherwise the default AWS credential chain.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, cfg), nil
}

func newS3Store(client putObjectAPI, cfg S3Config) *S3Store {
	return &S3Store{client: client, cfg: cfg}
}

func (s *S3Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	mtype, body, err := sniff(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if err := checkImage(mtype); err != nil {
		return "", err
	}

	// buffered so the SDK gets a seekable body with a known length
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	key := path.Join(s.cfg.Prefix, objectName(filename))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(mtype.String()),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to bucket %s: %w", key, s.cfg.Bucket, err)
	}

	url := s.PublicURL(key)
	log.WithFields(logrus.Fields{
		"bucket":       s.cfg.Bucket,
		"key":          key,
		"content_type": mtype.String(),
	}).Info("Image uploaded")
	return url, nil
}

// PublicURL returns the address an object key is served from
func (s *S3Store) PublicURL(key string) string {
	if s.cfg.Endpoint != "" {
		return strings.TrimRight(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
