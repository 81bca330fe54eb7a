package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Omar8345/readright-backend/application/ports/outbound"
	"github.com/Omar8345/readright-backend/config"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/rs/zerolog/log"
)

const defaultArticleTitle = "Untitled"

type diffbotResponse struct {
	Objects []diffbotObject `json:"objects"`
}

type diffbotObject struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type diffbotExtractor struct {
	ContentFetcher
	diffbotConfig *config.DiffbotConfig
}

func NewDiffbotExtractor(contentFetcher ContentFetcher, diffbotConfig *config.DiffbotConfig) outbound.ArticleExtractorPort {
	return &diffbotExtractor{
		ContentFetcher: contentFetcher,
		diffbotConfig:  diffbotConfig,
	}
}

func (d *diffbotExtractor) Extract(ctx context.Context, articleURL string) (*domain.Article, error) {
	req, err := d.getRequest(ctx, articleURL)
	if err != nil {
		log.Error().Err(err).Str("articleURL", articleURL).Msg("Failed to construct the extraction request")
		return nil, err
	}

	payload, err := d.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var body diffbotResponse
	if err := json.Unmarshal(payload, &body); err != nil {
		log.Error().Err(err).Str("articleURL", articleURL).Msg("Failed to unmarshal the extraction response")
		return nil, err
	}

	if len(body.Objects) == 0 || body.Objects[0].Text == "" {
		return nil, fmt.Errorf("extraction service returned no article text for %s", articleURL)
	}

	title := body.Objects[0].Title
	if title == "" {
		title = defaultArticleTitle
	}

	return &domain.Article{
		Title:     title,
		Text:      body.Objects[0].Text,
		SourceURL: articleURL,
	}, nil
}

func (d *diffbotExtractor) getRequest(ctx context.Context, articleURL string) (*http.Request, error) {
	query := url.Values{}
	query.Set("token", d.diffbotConfig.Token)
	query.Set("url", articleURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.diffbotConfig.ApiUrl+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")

	return req, nil
}
