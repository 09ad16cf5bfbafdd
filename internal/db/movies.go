package db

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/KillianGolds/ds-serverlessREST-lab/internal/movies"
)

// API is the part of *dynamodb.Client the movie store needs.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// MovieStore reads movies keyed by numeric "id" and cast entries
// partitioned by numeric "movieId".
type MovieStore struct {
	client      API
	moviesTable string
	castTable   string
}

var _ movies.Store = (*MovieStore)(nil)

func NewMovieStore(client API, moviesTable, castTable string) *MovieStore {
	return &MovieStore{
		client:      client,
		moviesTable: moviesTable,
		castTable:   castTable,
	}
}

// GetMovie passes client errors through unwrapped so their text reaches the
// caller unchanged.
func (s *MovieStore) GetMovie(ctx context.Context, id int) (movies.Record, error) {
	if err := validateTable(s.moviesTable); err != nil {
		return nil, err
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.moviesTable),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
	})
	if err != nil {
		return nil, err
	}
	if out == nil || len(out.Item) == 0 {
		return nil, movies.ErrMovieNotFound
	}

	var item movies.Record
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("dynamodb: unmarshal movie: %w", err)
	}
	return item, nil
}

func (s *MovieStore) GetCast(ctx context.Context, movieID int) ([]movies.Record, error) {
	if err := validateTable(s.castTable); err != nil {
		return nil, err
	}

	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.castTable),
		KeyConditionExpression: aws.String("movieId = :movieId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":movieId": numberAttr(movieID),
		},
	})
	if err != nil {
		return nil, err
	}

	cast := make([]movies.Record, 0)
	if out == nil {
		return cast, nil
	}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &cast); err != nil {
		return nil, fmt.Errorf("dynamodb: unmarshal cast: %w", err)
	}
	if cast == nil {
		cast = make([]movies.Record, 0)
	}
	return cast, nil
}

func numberAttr(n int) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
}
