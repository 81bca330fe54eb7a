package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/Omar8345/readright-backend/application/ports/outbound"
	"github.com/Omar8345/readright-backend/config"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const rewritePrompt = "Rewrite this article to be dyslexia-friendly with large spacing and easy-to-read formatting. " +
	"Do not add any headings, labels, or commentary. Only output the rewritten article:\n\n%s"

const summaryPrompt = "Summarize this article in concise bullet points only. " +
	"Do not add any introduction or labels, just the bullets:\n\n%s"

const titlePrompt = "Generate a concise and descriptive title for the following article only. " +
	"Do not add any additional commentary or explanation. Just the title:\n\n%s"

type geminiRewriter struct {
	client       *genai.Client
	geminiConfig *config.GeminiConfig
}

func NewGeminiRewriter(client *genai.Client, geminiConfig *config.GeminiConfig) outbound.ArticleRewriterPort {
	return &geminiRewriter{
		client:       client,
		geminiConfig: geminiConfig,
	}
}

func (g *geminiRewriter) Rewrite(ctx context.Context, text string) (*domain.SimplifiedArticle, error) {
	output, err := g.generate(ctx, fmt.Sprintf(rewritePrompt, text))
	if err != nil {
		return nil, err
	}
	return &domain.SimplifiedArticle{Text: output}, nil
}

func (g *geminiRewriter) Summarize(ctx context.Context, text string) (*domain.Summary, error) {
	output, err := g.generate(ctx, fmt.Sprintf(summaryPrompt, text))
	if err != nil {
		return nil, err
	}

	bullets := parseBullets(output)
	if len(bullets) == 0 {
		return nil, fmt.Errorf("model returned no bullet points")
	}

	return &domain.Summary{Bullets: bullets}, nil
}

func (g *geminiRewriter) Title(ctx context.Context, text string) (string, error) {
	output, err := g.generate(ctx, fmt.Sprintf(titlePrompt, text))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

func (g *geminiRewriter) generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.geminiConfig.Model, genai.Text(prompt), nil)
	if err != nil {
		log.Error().Err(err).Str("model", g.geminiConfig.Model).Msg("Gemini generate content failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var builder strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		builder.WriteString(part.Text)
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return output, nil
}

// parseBullets splits model output into ordered bullet strings, stripping
// the list markers the model prefixes lines with.
func parseBullets(output string) []string {
	var bullets []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(line)
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
