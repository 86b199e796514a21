package dynamo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-notes-api/internal/domain"
)

// NoteRepo provides typed DynamoDB operations for the notes table.
type NoteRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNoteRepo(client *dynamodb.Client, tableName string) *NoteRepo {
	return &NoteRepo{client: client, tableName: tableName}
}

func (r *NoteRepo) Put(ctx context.Context, n *domain.Note) error {
	item, err := encodeNote(n)
	if err != nil {
		return err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// encodeNote marshals a note and adds the numeric attribute backing the
// user_id GSI range key. The created_at string is RFC3339Nano with trailing
// zeros stripped, so it does not sort byte-wise by time within a second;
// epoch nanoseconds as an N attribute always do.
func encodeNote(n *domain.Note) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return nil, fmt.Errorf("marshal note: %w", err)
	}
	item["created_at_ns"] = &types.AttributeValueMemberN{
		Value: strconv.FormatInt(n.CreatedAt.UnixNano(), 10),
	}
	return item, nil
}

func (r *NoteRepo) Get(ctx context.Context, noteID string) (*domain.Note, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("note_id", noteID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("note not found: %w", domain.ErrNotFound)
	}
	var n domain.Note
	if err := attributevalue.UnmarshalMap(out.Item, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByUser returns all notes owned by userID, newest first. The user_id
// GSI has created_at_ns as its range key, so ScanIndexForward=false gives
// creation-time-descending order straight from the query.
func (r *NoteRepo) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("user_id-index"),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: userID}},
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	notes := []domain.Note{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepo) Delete(ctx context.Context, noteID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("note_id", noteID),
	})
	return err
}
