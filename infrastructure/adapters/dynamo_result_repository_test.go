package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Omar8345/readright-backend/config"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func newDynamoTestClient(endpoint string) *dynamodb.DynamoDB {
	sess := session.Must(session.NewSession(aws.NewConfig().
		WithEndpoint(endpoint).
		WithRegion("us-east-1").
		WithCredentials(credentials.NewStaticCredentials("test", "test", ""))))
	return dynamodb.New(sess)
}

func TestDynamoResultRepository_Save(t *testing.T) {
	var putPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &putPayload); err != nil {
			t.Errorf("Failed to unmarshal request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	repository := NewDynamoResultRepository(newDynamoTestClient(server.URL), &config.DynamoConfig{
		TableName: "articles",
	})

	record := domain.ArticleRecord{
		ID:             "article-1",
		Title:          "T",
		SimplifiedText: "simple",
		Bullets:        []string{"one", "two"},
		AudioFileID:    "file-1",
		AudioKey:       "articles/article-1/file-1.mp3",
		AudioURL:       "https://bucket.s3.amazonaws.com/articles/article-1/file-1.mp3",
		CreatedAt:      time.Now().UTC(),
	}

	if err := repository.Save(context.Background(), record); err != nil {
		t.Fatal("Failed to save record:", err)
	}

	if putPayload["TableName"] != "articles" {
		t.Fatalf("Unexpected table name: %v", putPayload["TableName"])
	}

	item, ok := putPayload["Item"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected an Item in the PutItem request")
	}
	id, ok := item["id"].(map[string]interface{})
	if !ok || id["S"] != "article-1" {
		t.Fatalf("Unexpected item id attribute: %v", item["id"])
	}
	audioKey, ok := item["audio_key"].(map[string]interface{})
	if !ok || audioKey["S"] != record.AudioKey {
		t.Fatalf("Unexpected audio key attribute: %v", item["audio_key"])
	}
}

func TestDynamoResultRepository_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		_, _ = w.Write([]byte(`{
			"Item": {
				"id": {"S": "article-1"},
				"title": {"S": "T"},
				"simplified_text": {"S": "simple"},
				"tldr": {"L": [{"S": "one"}, {"S": "two"}]},
				"audio_file_id": {"S": "file-1"},
				"audio_key": {"S": "articles/article-1/file-1.mp3"},
				"audio_url": {"S": "https://bucket.s3.amazonaws.com/articles/article-1/file-1.mp3"},
				"created_at": {"S": "2026-01-02T15:04:05Z"}
			}
		}`))
	}))
	defer server.Close()

	repository := NewDynamoResultRepository(newDynamoTestClient(server.URL), &config.DynamoConfig{
		TableName: "articles",
	})

	record, err := repository.Get(context.Background(), "article-1")
	if err != nil {
		t.Fatal("Failed to get record:", err)
	}

	if record.ID != "article-1" || record.SimplifiedText != "simple" {
		t.Fatalf("Unexpected record: %+v", record)
	}
	if len(record.Bullets) != 2 || record.Bullets[0] != "one" {
		t.Fatalf("Unexpected bullets: %v", record.Bullets)
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("Expected a parsed created-at timestamp")
	}
}

func TestDynamoResultRepository_GetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	repository := NewDynamoResultRepository(newDynamoTestClient(server.URL), &config.DynamoConfig{
		TableName: "articles",
	})

	if _, err := repository.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("Expected ErrRecordNotFound, got %v", err)
	}
}
