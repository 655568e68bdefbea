package testutil

import (
	"context"
	"testing"

	minidyn "github.com/truora/minidyn/aws-v2/client"

	"github.com/eventstack/events-api/internal/storage/dynamo"
)

// TableName is the events table used by all tests.
const TableName = "EventsTable"

// NewFakeDynamo returns an in-memory DynamoDB client with the events table
// created. The fake interprets real update and filter expressions, so
// repository tests exercise the same expressions production sends.
func NewFakeDynamo(t *testing.T) *minidyn.Client {
	t.Helper()

	fake := minidyn.NewClient()
	if err := dynamo.EnsureTable(context.Background(), fake, TableName); err != nil {
		t.Fatalf("failed to create events table: %v", err)
	}
	return fake
}
