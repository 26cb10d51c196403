package uploads

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/snapvault/snapvault-backend/config"
)

// Presigner hands out short-lived S3 PUT URLs so clients upload
// captures directly; the resulting object URL is what callers store as
// original_image_url.
type Presigner struct {
	presign *s3.PresignClient
	bucket  string
	region  string
	ttl     time.Duration
}

func NewPresigner(ctx context.Context, cfg *config.UploadsConfig) (*Presigner, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("UPLOADS_BUCKET is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &Presigner{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		ttl:     cfg.PresignTTL,
	}, nil
}

type UploadTicket struct {
	UploadURL string `json:"upload_url"`
	ObjectURL string `json:"object_url"`
	ObjectKey string `json:"object_key"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

// PresignUpload issues a PUT URL under the caller's prefix.
func (p *Presigner) PresignUpload(ctx context.Context, userID, contentType string) (*UploadTicket, error) {
	key := fmt.Sprintf("uploads/%s/%s", userID, uuid.New().String())

	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &UploadTicket{
		UploadURL: req.URL,
		ObjectURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, p.region, key),
		ObjectKey: key,
		ExpiresIn: int(p.ttl.Seconds()),
	}, nil
}
