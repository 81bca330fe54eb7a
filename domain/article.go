package domain

import "time"

// SourceKind tells which variant of the request payload was populated.
type SourceKind string

const (
	RawTextSource SourceKind = "text"
	URLSource     SourceKind = "url"
)

// ArticleSource is the classified request input: exactly one of Text or URL
// is set, matching Kind.
type ArticleSource struct {
	Kind SourceKind
	Text string
	URL  string
}

// Article is the clean text handed to the rewrite stage, either as supplied
// by the caller or as returned by the extraction service.
type Article struct {
	Title     string
	Text      string
	SourceURL string
}

type SimplifiedArticle struct {
	Text string
}

// Summary is an ordered list of bullet points.
type Summary struct {
	Bullets []string
}

// NarrationAudio carries the synthesized speech. Ownership transfers to the
// audio store, which is the sole writer to object storage.
type NarrationAudio struct {
	Bytes    []byte
	MimeType string
}

// StoredAudio identifies an uploaded narration object.
type StoredAudio struct {
	FileID string
	Key    string
	URL    string
}

// ArticleRecord is the row persisted for a processed article.
type ArticleRecord struct {
	ID             string
	Title          string
	SimplifiedText string
	Bullets        []string
	AudioFileID    string
	AudioKey       string
	AudioURL       string
	SourceURL      string
	CreatedAt      time.Time
}
