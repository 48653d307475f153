package media

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

// S3API é o subconjunto do client S3 usado pelo Mirror.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Mirror guarda uma cópia das imagens enviadas num bucket. Sem bucket, é no-op.
type Mirror struct {
	bucket string
	client S3API
	logger *logging.Logger
	now    func() time.Time
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func NewMirror(client S3API, bucket string, logger *logging.Logger) *Mirror {
	if logger == nil {
		logger = logging.Default()
	}
	return &Mirror{bucket: bucket, client: client, logger: logger, now: time.Now}
}

func (m *Mirror) Enabled() bool {
	return m != nil && m.bucket != "" && m.client != nil
}

// Put grava a imagem em uploads/<tipo>/<usuário>/<aaaa>/<mm>/<uuid>.webp e devolve a chave.
func (m *Mirror) Put(ctx context.Context, kind string, userID uint, up models.Upload) (string, error) {
	if !m.Enabled() {
		return "", nil
	}

	now := m.now().UTC()
	key := fmt.Sprintf("uploads/%s/%d/%d/%02d/%s.webp", kind, userID, now.Year(), now.Month(), uuid.NewString())

	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(up.Data),
		ContentType: aws.String(up.ContentType),
		Metadata: map[string]string{
			"original-filename": up.Filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("media: s3 put %s: %w", key, err)
	}

	m.logger.Info("image mirrored to S3", "key", key, "bytes", len(up.Data))
	return key, nil
}
