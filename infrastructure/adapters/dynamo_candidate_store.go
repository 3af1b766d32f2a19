package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

type dynamoCandidateItem struct {
	Token     string           `dynamodbav:"token"`
	City      string           `dynamodbav:"city"`
	State     string           `dynamodbav:"state"`
	Items     []dynamoNewsItem `dynamodbav:"items"`
	CreatedAt int64            `dynamodbav:"created_at"`
	TTL       int64            `dynamodbav:"ttl"`
}

type dynamoNewsItem struct {
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
}

type dynamoCandidateStore struct {
	logger    outbound.LoggerPort
	dynamoSvc *dynamodb.DynamoDB
	tableName string
	ttl       time.Duration
}

// NewDynamoCandidateStore stores candidate sets in a DynamoDB table whose
// TTL attribute is "ttl". Expiry is also checked on read since DynamoDB
// removes expired items lazily.
func NewDynamoCandidateStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, tableName string, ttl time.Duration) outbound.CandidateStorePort {
	return &dynamoCandidateStore{
		logger:    logger,
		dynamoSvc: dynamoSvc,
		tableName: tableName,
		ttl:       ttl,
	}
}

func (s *dynamoCandidateStore) Save(ctx context.Context, set domain.CandidateSet) error {
	items := make([]dynamoNewsItem, 0, len(set.Items))
	for _, item := range set.Items {
		items = append(items, dynamoNewsItem{
			Title:       item.Title,
			Description: item.Description,
		})
	}

	av, err := dynamodbattribute.MarshalMap(dynamoCandidateItem{
		Token:     set.Token,
		City:      set.Location.City,
		State:     set.Location.State,
		Items:     items,
		CreatedAt: set.CreatedAt.Unix(),
		TTL:       set.CreatedAt.Add(s.ttl).Unix(),
	})
	if err != nil {
		s.logger.Error(err, "failed to marshal candidate item")
		return err
	}

	_, err = s.dynamoSvc.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to save candidate item", map[string]interface{}{
			"token": set.Token,
		})
	}
	return err
}

func (s *dynamoCandidateStore) Get(ctx context.Context, token string) (*domain.CandidateSet, error) {
	out, err := s.dynamoSvc.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]*dynamodb.AttributeValue{
			"token": {S: aws.String(token)},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, domain.ErrCandidateSetExpired
	}

	var item dynamoCandidateItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		s.logger.Error(err, "failed to unmarshal candidate item")
		return nil, err
	}
	if item.TTL < time.Now().Unix() {
		return nil, domain.ErrCandidateSetExpired
	}

	items := make([]domain.NewsItem, 0, len(item.Items))
	for _, i := range item.Items {
		items = append(items, domain.NewsItem{
			Title:       i.Title,
			Description: i.Description,
		})
	}

	return &domain.CandidateSet{
		Token:     item.Token,
		Location:  domain.Location{City: item.City, State: item.State},
		Items:     items,
		CreatedAt: time.Unix(item.CreatedAt, 0),
	}, nil
}

func (s *dynamoCandidateStore) Delete(ctx context.Context, token string) error {
	_, err := s.dynamoSvc.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]*dynamodb.AttributeValue{
			"token": {S: aws.String(token)},
		},
	})
	return err
}
