package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Omar8345/readright-backend/application/ports/outbound"
	"github.com/Omar8345/readright-backend/config"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/rs/zerolog/log"
)

const mpegMimeType = "audio/mpeg"

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsAudioGenerator struct {
	ContentFetcher
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewElevenLabsAudioGenerator(contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig) outbound.AudioGeneratorPort {
	return &elevenLabsAudioGenerator{
		ContentFetcher:   contentFetcher,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (a *elevenLabsAudioGenerator) Generate(ctx context.Context, text string) (*domain.NarrationAudio, error) {
	if text == "" {
		return nil, fmt.Errorf("narration text is empty")
	}

	req, err := a.getRequest(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("Failed to construct the HTTP request for audio synthesis")
		return nil, err
	}

	payload, err := a.FetchContent(req)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("synthesis service returned an empty audio stream")
	}

	return &domain.NarrationAudio{
		Bytes:    payload,
		MimeType: mpegMimeType,
	}, nil
}

func (a *elevenLabsAudioGenerator) getRequest(ctx context.Context, text string) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelId: a.elevenLabsConfig.ModelId,
		VoiceSettings: VoiceSettings{
			Stability:       a.elevenLabsConfig.Stability,
			SimilarityBoost: a.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	requestURL := a.elevenLabsConfig.ApiUrl + "/" + a.elevenLabsConfig.VoiceId
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Error().Err(err).Str("url", requestURL).Msg("Failed to create the HTTP POST request")
		return nil, err
	}

	req.Header.Add("Accept", mpegMimeType)
	req.Header.Add("xi-api-key", a.elevenLabsConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return req, nil
}
