package outbound

import (
	"context"

	"github.com/Omar8345/readright-backend/domain"
)

// AudioStorePort uploads a narration blob to object storage. It is the sole
// writer to the bucket; an uploaded object is never deleted by this system,
// even when a later stage fails.
type AudioStorePort interface {
	Save(ctx context.Context, audio domain.NarrationAudio, articleID string) (*domain.StoredAudio, error)
}
