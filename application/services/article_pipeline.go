package services

import (
	"context"
	"time"

	"github.com/Omar8345/readright-backend/application/ports/inbound"
	"github.com/Omar8345/readright-backend/application/ports/outbound"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type articlePipeline struct {
	extractor  outbound.ArticleExtractorPort
	rewriter   outbound.ArticleRewriterPort
	narrator   outbound.AudioGeneratorPort
	audioStore outbound.AudioStorePort
	repository outbound.ResultRepositoryPort
}

func NewArticlePipeline(extractor outbound.ArticleExtractorPort, rewriter outbound.ArticleRewriterPort,
	narrator outbound.AudioGeneratorPort, audioStore outbound.AudioStorePort,
	repository outbound.ResultRepositoryPort) inbound.ArticlePipelinePort {
	return &articlePipeline{
		extractor:  extractor,
		rewriter:   rewriter,
		narrator:   narrator,
		audioStore: audioStore,
		repository: repository,
	}
}

// Process runs the single forward pass: resolve -> extract -> rewrite ->
// summarize -> narrate -> upload -> save row. Stages run strictly in order
// and the first failure aborts the pass; side effects of earlier stages are
// not rolled back.
func (p *articlePipeline) Process(ctx context.Context, params inbound.ProcessArticleParams) (*domain.ArticleRecord, error) {
	source, err := ResolveSource(params.Text, params.URL)
	if err != nil {
		return nil, err
	}

	article, err := p.resolveArticle(ctx, source)
	if err != nil {
		return nil, err
	}

	articleID := uuid.NewString()
	log.Debug().
		Str("articleID", articleID).
		Str("source", string(source.Kind)).
		Msg("Processing article")

	simplified, err := p.rewriter.Rewrite(ctx, article.Text)
	if err != nil {
		return nil, domain.NewStageError(domain.GenerationError, "failed to rewrite article", err)
	}

	summary, err := p.rewriter.Summarize(ctx, article.Text)
	if err != nil {
		return nil, domain.NewStageError(domain.GenerationError, "failed to summarize article", err)
	}

	audio, err := p.narrator.Generate(ctx, cleanForNarration(simplified.Text))
	if err != nil {
		return nil, domain.NewStageError(domain.SynthesisError, "failed to synthesize narration", err)
	}

	stored, err := p.audioStore.Save(ctx, *audio, articleID)
	if err != nil {
		return nil, domain.NewStageError(domain.PersistenceError, "failed to upload narration audio", err)
	}

	record := domain.ArticleRecord{
		ID:             articleID,
		Title:          article.Title,
		SimplifiedText: simplified.Text,
		Bullets:        summary.Bullets,
		AudioFileID:    stored.FileID,
		AudioKey:       stored.Key,
		AudioURL:       stored.URL,
		SourceURL:      article.SourceURL,
		CreatedAt:      time.Now().UTC(),
	}

	if err := p.repository.Save(ctx, record); err != nil {
		// The uploaded object is left in place: no compensating delete.
		log.Warn().
			Str("articleID", articleID).
			Str("audioKey", stored.Key).
			Msg("Row write failed after upload, audio object orphaned")
		return nil, domain.NewStageError(domain.PersistenceError, "failed to save article record", err)
	}

	return &record, nil
}

func (p *articlePipeline) Lookup(ctx context.Context, id string) (*domain.ArticleRecord, error) {
	record, err := p.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// resolveArticle produces the clean text the rewrite stage consumes. In
// text-mode the only model call is the title; in URL-mode title and text
// both come from the extraction service.
func (p *articlePipeline) resolveArticle(ctx context.Context, source *domain.ArticleSource) (*domain.Article, error) {
	if source.Kind == domain.RawTextSource {
		title, err := p.rewriter.Title(ctx, source.Text)
		if err != nil {
			return nil, domain.NewStageError(domain.GenerationError, "failed to generate title", err)
		}
		return &domain.Article{
			Title: title,
			Text:  source.Text,
		}, nil
	}

	article, err := p.extractor.Extract(ctx, source.URL)
	if err != nil {
		return nil, domain.NewStageError(domain.ExtractionError, "failed to extract article", err)
	}
	return article, nil
}
