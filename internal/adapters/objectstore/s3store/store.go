package s3store

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type Config struct {
	Bucket  string
	// BaseURL se completa con "/" si falta: URL = BaseURL + Bucket + "/" + key.
	BaseURL string
	Region  string

	// Endpoint opcional (minio, localstack). Si viene, se usa path-style.
	Endpoint string

	// Credentials nil => cadena default de AWS (env, ~/.aws, rol).
	Credentials *credentials.Credentials
}

// Store sube objetos públicos a un bucket S3.
type Store struct {
	client  s3iface.S3API
	bucket  string
	baseURL string
}

func New(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("s3 bucket required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("s3 base url required")
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.Credentials != nil {
		awsCfg.Credentials = cfg.Credentials
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}
	return NewWithClient(s3.New(sess), cfg.Bucket, cfg.BaseURL), nil
}

func NewWithClient(client s3iface.S3API, bucket, baseURL string) *Store {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Store{client: client, bucket: bucket, baseURL: baseURL}
}

func (s *Store) Put(ctx context.Context, key, contentType string, body io.ReadSeeker) error {
	size, err := body.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return err
	}

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ACL:           aws.String(s3.ObjectCannedACLPublicRead),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	return err
}

func (s *Store) URL(key string) string {
	return s.baseURL + s.bucket + "/" + key
}
