package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Omar8345/readright-backend/application/ports/outbound"
	"github.com/Omar8345/readright-backend/config"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type s3AudioStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3AudioStore(s3Svc *s3.S3, s3Config *config.S3Config) outbound.AudioStorePort {
	return &s3AudioStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3AudioStore) Save(ctx context.Context, audio domain.NarrationAudio, articleID string) (*domain.StoredAudio, error) {
	fileID := uuid.NewString()
	itemPath := s.getItemPath(articleID, fileID)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(itemPath),
		Body:          bytes.NewReader(audio.Bytes),
		ContentLength: aws.Int64(int64(len(audio.Bytes))),
		ContentType:   aws.String(audio.MimeType),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("key", itemPath).
			Msg("Failed to upload narration audio to S3")
		return nil, err
	}

	audioURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, itemPath)
	log.Debug().
		Str("audioURL", audioURL).
		Msg("Successfully uploaded narration audio to S3")

	return &domain.StoredAudio{
		FileID: fileID,
		Key:    itemPath,
		URL:    audioURL,
	}, nil
}

func (s *s3AudioStore) getItemPath(articleID string, fileID string) string {
	return fmt.Sprintf("articles/%s/%s.mp3", articleID, fileID)
}
