package adapters

import (
	"context"
	"time"

	"github.com/Omar8345/readright-backend/application/ports/outbound"
	"github.com/Omar8345/readright-backend/config"
	"github.com/Omar8345/readright-backend/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/rs/zerolog/log"
)

type dynamoArticleItem struct {
	ID             string   `dynamodbav:"id"`
	Title          string   `dynamodbav:"title"`
	SimplifiedText string   `dynamodbav:"simplified_text"`
	Bullets        []string `dynamodbav:"tldr"`
	AudioFileID    string   `dynamodbav:"audio_file_id"`
	AudioKey       string   `dynamodbav:"audio_key"`
	AudioURL       string   `dynamodbav:"audio_url"`
	SourceURL      string   `dynamodbav:"source_url,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
}

type dynamoResultRepository struct {
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoResultRepository(dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.ResultRepositoryPort {
	return &dynamoResultRepository{
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (r *dynamoResultRepository) Save(ctx context.Context, record domain.ArticleRecord) error {
	item := dynamoArticleItem{
		ID:             record.ID,
		Title:          record.Title,
		SimplifiedText: record.SimplifiedText,
		Bullets:        record.Bullets,
		AudioFileID:    record.AudioFileID,
		AudioKey:       record.AudioKey,
		AudioURL:       record.AudioURL,
		SourceURL:      record.SourceURL,
		CreatedAt:      record.CreatedAt.Format(time.RFC3339),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		log.Error().Err(err).Str("articleID", record.ID).Msg("Failed to marshal article item")
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(r.dynamoConfig.TableName),
	}

	if _, err := r.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		log.Error().Err(err).Str("articleID", record.ID).Msg("Failed to save article item")
		return err
	}

	return nil
}

func (r *dynamoResultRepository) Get(ctx context.Context, id string) (*domain.ArticleRecord, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.dynamoConfig.TableName),
		Key: map[string]*dynamodb.AttributeValue{
			"id": {S: aws.String(id)},
		},
	}

	output, err := r.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		log.Error().Err(err).Str("articleID", id).Msg("Failed to fetch article item")
		return nil, err
	}
	if output.Item == nil {
		return nil, domain.ErrRecordNotFound
	}

	var item dynamoArticleItem
	if err := dynamodbattribute.UnmarshalMap(output.Item, &item); err != nil {
		log.Error().Err(err).Str("articleID", id).Msg("Failed to unmarshal article item")
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	return &domain.ArticleRecord{
		ID:             item.ID,
		Title:          item.Title,
		SimplifiedText: item.SimplifiedText,
		Bullets:        item.Bullets,
		AudioFileID:    item.AudioFileID,
		AudioKey:       item.AudioKey,
		AudioURL:       item.AudioURL,
		SourceURL:      item.SourceURL,
		CreatedAt:      createdAt,
	}, nil
}
