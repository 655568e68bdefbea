package dynamo

import (
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/eventstack/events-api/internal/domain"
)

type assignment struct {
	attr  string
	value types.AttributeValue
}

// buildUpdateExpression turns the supplied fields into a single SET
// expression covering exactly those attributes plus updatedAt. Every
// attribute goes through a #name placeholder since "status" and "date" are
// reserved words. Field order is fixed, so the expression is deterministic
// for a given change set.
func buildUpdateExpression(changes domain.EventChanges, updatedAt string) (string, map[string]string, map[string]types.AttributeValue) {
	assignments := make([]assignment, 0, 8)

	addString := func(attr string, v *string) {
		if v != nil {
			assignments = append(assignments, assignment{attr, &types.AttributeValueMemberS{Value: *v}})
		}
	}

	addString("title", changes.Title)
	addString("description", changes.Description)
	addString("date", changes.Date)
	addString("location", changes.Location)
	if changes.Capacity != nil {
		assignments = append(assignments, assignment{"capacity", &types.AttributeValueMemberN{Value: strconv.Itoa(*changes.Capacity)}})
	}
	addString("organizer", changes.Organizer)
	addString("status", changes.Status)
	assignments = append(assignments, assignment{"updatedAt", &types.AttributeValueMemberS{Value: updatedAt}})

	clauses := make([]string, 0, len(assignments))
	names := make(map[string]string, len(assignments))
	values := make(map[string]types.AttributeValue, len(assignments))
	for _, a := range assignments {
		clauses = append(clauses, "#"+a.attr+" = :"+a.attr)
		names["#"+a.attr] = a.attr
		values[":"+a.attr] = a.value
	}

	return "SET " + strings.Join(clauses, ", "), names, values
}
