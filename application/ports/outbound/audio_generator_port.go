package outbound

import (
	"context"

	"github.com/Omar8345/readright-backend/domain"
)

type AudioGeneratorPort interface {
	Generate(ctx context.Context, text string) (*domain.NarrationAudio, error)
}
