package dto

import "github.com/Omar8345/readright-backend/domain"

// SimplifyArticleRequest carries either raw article text or a URL to
// extract; exactly one must be set.
type SimplifyArticleRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type SimplifyArticleResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	SimplifiedText string   `json:"simplifiedText"`
	Summary        []string `json:"summary"`
	AudioID        string   `json:"audioId"`
	AudioURL       string   `json:"audioUrl"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func ResponseFromRecord(record *domain.ArticleRecord) SimplifyArticleResponse {
	return SimplifyArticleResponse{
		ID:             record.ID,
		Title:          record.Title,
		SimplifiedText: record.SimplifiedText,
		Summary:        record.Bullets,
		AudioID:        record.AudioFileID,
		AudioURL:       record.AudioURL,
	}
}
