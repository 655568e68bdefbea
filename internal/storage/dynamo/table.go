package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// TableAPI is the table-management subset of the DynamoDB client.
type TableAPI interface {
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTable creates the events table (string hash key eventId) if it does
// not exist yet. An already-existing table is not an error. Production
// deployments create the table out of band; this is for local stacks and
// tests.
func EnsureTable(ctx context.Context, client TableAPI, table string) error {
	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String(attrEventID),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String(attrEventID),
				KeyType:       types.KeyTypeHash,
			},
		},
	})
	if err == nil {
		return nil
	}

	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceInUseException" {
		return nil
	}
	return fmt.Errorf("create table %s: %w", table, err)
}
