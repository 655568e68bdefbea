package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/eventstack/events-api/internal/domain"
)

const attrEventID = "eventId"

// API is the subset of the DynamoDB client the repository uses. Satisfied
// by *dynamodb.Client and by fakes in tests.
type API interface {
	GetItem(ctx context.Context, input *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, input *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, input *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, input *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, input *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type EventRepository struct {
	client API
	table  string
}

func NewEventRepository(client API, table string) *EventRepository {
	return &EventRepository{client: client, table: table}
}

func (r *EventRepository) key(eventID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrEventID: &types.AttributeValueMemberS{Value: eventID},
	}
}

func (r *EventRepository) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(eventID),
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	if len(out.Item) == 0 {
		return domain.Event{}, domain.ErrEventNotFound
	}

	var event domain.Event
	if err := attributevalue.UnmarshalMap(out.Item, &event); err != nil {
		return domain.Event{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) PutEvent(ctx context.Context, event domain.Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put event: %w", err)
	}
	return nil
}

// UpdateEvent sets exactly the supplied attributes plus updatedAt in one
// UpdateItem call and returns the full record as stored afterwards. It never
// reads the record first, so concurrent partial updates to disjoint fields
// do not clobber each other.
func (r *EventRepository) UpdateEvent(ctx context.Context, eventID string, changes domain.EventChanges, updatedAt string) (domain.Event, error) {
	expr, names, values := buildUpdateExpression(changes, updatedAt)

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       r.key(eventID),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("update event: %w", err)
	}

	var event domain.Event
	if err := attributevalue.UnmarshalMap(out.Attributes, &event); err != nil {
		return domain.Event{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(eventID),
	})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ListEvents scans the whole table, optionally filtered to one status value
// (exact match). A single scan page only; no continuation-token handling.
func (r *EventRepository) ListEvents(ctx context.Context, status string) ([]domain.Event, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		}
	}

	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}

	events := make([]domain.Event, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &events); err != nil {
		return nil, fmt.Errorf("unmarshal events: %w", err)
	}
	return events, nil
}
