package models

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyRound(t *testing.T) {
	cases := map[string]string{
		"0.005":  "0.01",
		"0.004":  "0.00",
		"12.345": "12.35",
		"100":    "100.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustParseMoney(in).Round().StringFixed(2), in)
	}
}

func TestMoneyHasValidScale(t *testing.T) {
	assert.True(t, MustParseMoney("10").HasValidScale())
	assert.True(t, MustParseMoney("10.50").HasValidScale())
	assert.False(t, MustParseMoney("10.005").HasValidScale())
}

func TestParseMoneyRejectsGarbage(t *testing.T) {
	_, err := ParseMoney("ten")
	assert.Error(t, err)
}

func TestMoneyDynamoDBAttribute(t *testing.T) {
	p := PurchaseRecord{OrderID: "o1", Amount: MustParseMoney("19.99")}

	item, err := attributevalue.MarshalMap(p)
	require.NoError(t, err)
	n, ok := item["amount"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "19.99", n.Value)

	item["amount"] = &types.AttributeValueMemberS{Value: "5.5"}
	var decoded PurchaseRecord
	require.NoError(t, attributevalue.UnmarshalMap(item, &decoded))
	assert.Equal(t, "5.50", decoded.Amount.StringFixed(2))
}

func TestWithdrawalJSONOmitsUnsetTimestamps(t *testing.T) {
	body, err := json.Marshal(WithdrawalRequest{Id: "w1", Amount: MoneyFromInt(60), Status: PENDING})
	require.NoError(t, err)

	assert.Contains(t, string(body), `"amount":"60"`)
	assert.NotContains(t, string(body), "paid_at")
	assert.NotContains(t, string(body), "rejected_at")
}
