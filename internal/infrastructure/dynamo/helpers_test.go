package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	expr, names, values, err := buildUpdateExpr(map[string]interface{}{"name": "alice"})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", expr)
	assert.Equal(t, map[string]string{"#f0": "name"}, names)
	_, ok := values[":v0"]
	assert.True(t, ok)
}

func TestBuildUpdateExpr_MultipleFields_Deterministic(t *testing.T) {
	updates := map[string]interface{}{
		"otp_hash":       "h",
		"email":          "a@b.com",
		"otp_expires_at": int64(123),
	}
	// Call twice to verify determinism.
	expr1, names1, _, err := buildUpdateExpr(updates)
	require.NoError(t, err)
	expr2, _, _, err := buildUpdateExpr(updates)
	require.NoError(t, err)

	assert.Equal(t, expr1, expr2)

	// Keys must be sorted: email < otp_expires_at < otp_hash
	assert.Equal(t, "email", names1["#f0"])
	assert.Equal(t, "otp_expires_at", names1["#f1"])
	assert.Equal(t, "otp_hash", names1["#f2"])
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1, #f2 = :v2", expr1)
}

func TestBuildUpdateExpr_ValuesMarshalledCorrectly(t *testing.T) {
	_, _, values, err := buildUpdateExpr(map[string]interface{}{"otp_expires_at": int64(42)})
	require.NoError(t, err)
	av, ok := values[":v0"]
	require.True(t, ok)
	numVal, isNum := av.(*types.AttributeValueMemberN)
	require.True(t, isNum)
	assert.Equal(t, "42", numVal.Value)
}

func TestBuildUpdateExpr_EmptyMap_ReturnsError(t *testing.T) {
	_, _, _, err := buildUpdateExpr(map[string]interface{}{})
	assert.ErrorContains(t, err, "no fields to update")
}

func TestBuildRemoveExpr(t *testing.T) {
	expr, names, err := buildRemoveExpr([]string{"otp_hash", "otp_expires_at"})
	require.NoError(t, err)
	assert.Equal(t, "REMOVE #r0, #r1", expr)
	assert.Equal(t, "otp_expires_at", names["#r0"])
	assert.Equal(t, "otp_hash", names["#r1"])
}

func TestBuildRemoveExpr_Empty_ReturnsError(t *testing.T) {
	_, _, err := buildRemoveExpr(nil)
	assert.ErrorContains(t, err, "no attributes to remove")
}
