package dynamo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// buildUpdateExpr converts a map of field->value into a DynamoDB SET expression.
// Fields are processed in sorted order so the expression is deterministic.
func buildUpdateExpr(updates map[string]interface{}) (expr string, names map[string]string, values map[string]types.AttributeValue, err error) {
	if len(updates) == 0 {
		return "", nil, nil, fmt.Errorf("no fields to update")
	}
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names = make(map[string]string)
	values = make(map[string]types.AttributeValue)
	parts := make([]string, len(keys))
	for i, k := range keys {
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = k
		av, mErr := attributevalue.Marshal(updates[k])
		if mErr != nil {
			return "", nil, nil, fmt.Errorf("marshal field %s: %w", k, mErr)
		}
		values[valueKey] = av
		parts[i] = fmt.Sprintf("%s = %s", nameKey, valueKey)
	}
	return "SET " + strings.Join(parts, ", "), names, values, nil
}

// buildRemoveExpr builds a DynamoDB REMOVE expression for the given attributes.
// Attribute absence is state here (a user with no pending OTP simply has no
// otp_hash item attribute), so removal must be a REMOVE, not a SET to null.
func buildRemoveExpr(attrs []string) (expr string, names map[string]string, err error) {
	if len(attrs) == 0 {
		return "", nil, fmt.Errorf("no attributes to remove")
	}
	sorted := append([]string(nil), attrs...)
	sort.Strings(sorted)
	names = make(map[string]string)
	parts := make([]string, len(sorted))
	for i, a := range sorted {
		nameKey := fmt.Sprintf("#r%d", i)
		names[nameKey] = a
		parts[i] = nameKey
	}
	return "REMOVE " + strings.Join(parts, ", "), names, nil
}
