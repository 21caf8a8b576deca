package models

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for currency amounts.
const MoneyScale = 2

// Money is a fixed-point currency amount. It is encoded as a JSON string and as a
// DynamoDB number so that amounts never pass through float64.
type Money struct {
	decimal.Decimal
}

// ZeroMoney is the zero amount.
var ZeroMoney = Money{Decimal: decimal.Zero}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MoneyFromInt returns a whole-unit amount.
func MoneyFromInt(v int64) Money {
	return Money{Decimal: decimal.NewFromInt(v)}
}

// ParseMoney parses a decimal string such as "60" or "12.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroMoney, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{Decimal: d}, nil
}

// MustParseMoney is ParseMoney for literals known to be valid.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(o Money) Money { return Money{Decimal: m.Decimal.Add(o.Decimal)} }
func (m Money) Sub(o Money) Money { return Money{Decimal: m.Decimal.Sub(o.Decimal)} }

// Round rounds half away from zero to MoneyScale places. For the non-negative amounts
// handled by the ledger this is round-half-up.
func (m Money) Round() Money { return Money{Decimal: m.Decimal.Round(MoneyScale)} }

// HasValidScale reports whether the amount has no more than MoneyScale fractional digits.
func (m Money) HasValidScale() bool {
	return m.Decimal.Equal(m.Decimal.Truncate(MoneyScale))
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (m Money) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: m.Decimal.String()}, nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (m *Money) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		m.Decimal = decimal.Zero
		return nil
	default:
		return fmt.Errorf("cannot unmarshal %T into Money", av)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("failed to parse money attribute %q: %w", raw, err)
	}
	m.Decimal = d
	return nil
}
