package adapters

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Omar8345/readright-backend/config"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

func newS3TestClient(endpoint string) *s3.S3 {
	sess := session.Must(session.NewSession(aws.NewConfig().
		WithEndpoint(endpoint).
		WithRegion("us-east-1").
		WithCredentials(credentials.NewStaticCredentials("test", "test", "")).
		WithS3ForcePathStyle(true)))
	return s3.New(sess)
}

func TestS3AudioStore_Save(t *testing.T) {
	var uploadedKey string
	var uploadedBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploadedKey = strings.TrimPrefix(r.URL.Path, "/test-bucket/")
		uploadedBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewS3AudioStore(newS3TestClient(server.URL), &config.S3Config{
		BucketName: "test-bucket",
		Region:     "us-east-1",
	})

	stored, err := store.Save(context.Background(), domain.NarrationAudio{
		Bytes:    []byte("mp3-bytes"),
		MimeType: "audio/mpeg",
	}, "article-1")
	if err != nil {
		t.Fatal("Failed to save audio:", err)
	}

	if !strings.HasPrefix(stored.Key, "articles/article-1/") || !strings.HasSuffix(stored.Key, ".mp3") {
		t.Fatalf("Unexpected object key: %q", stored.Key)
	}
	if stored.Key != uploadedKey {
		t.Fatalf("Returned key %q does not match uploaded key %q", stored.Key, uploadedKey)
	}
	if stored.URL != "https://test-bucket.s3.amazonaws.com/"+stored.Key {
		t.Fatalf("Unexpected object url: %q", stored.URL)
	}
	if stored.FileID == "" {
		t.Fatal("Expected a non-empty file id")
	}
	if string(uploadedBody) != "mp3-bytes" {
		t.Fatalf("Unexpected uploaded payload: %q", uploadedBody)
	}
}

func TestS3AudioStore_UploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	store := NewS3AudioStore(newS3TestClient(server.URL), &config.S3Config{
		BucketName: "test-bucket",
		Region:     "us-east-1",
	})

	_, err := store.Save(context.Background(), domain.NarrationAudio{
		Bytes:    []byte("mp3-bytes"),
		MimeType: "audio/mpeg",
	}, "article-1")
	if err == nil {
		t.Fatal("Expected an error for a failed upload")
	}
}
