package domain

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ID string

func ValidateID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
			return false
		}
	}
	return true
}

// ParseID validates a hex object id and returns it in the lower case form
// ids are stored and cached under.
func ParseID(id string) (ID, bool) {
	if !ValidateID(id) {
		return "", false
	}
	return ID(strings.ToLower(id)), true
}

// Amount is a monetary value in cents.
type Amount int64

func NewAmountFromCents(cents int64) Amount {
	return Amount(cents)
}

var (
	ErrAmountOutOfRange = errors.New("amount out of range")

	maxCents = decimal.New(math.MaxInt64, 0)
	minCents = decimal.New(math.MinInt64, 0)
)

// ParseAmount accepts "12,50", "12.50" or "12" and rounds to whole cents.
// Exponent notation is rejected, as is anything that does not fit in int64 cents.
func ParseAmount(value string) (Amount, error) {
	normalized := normalizeDecimal(value)
	if strings.ContainsAny(normalized, "eE") {
		return 0, fmt.Errorf("invalid amount %q: exponent notation", value)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}

	cents := d.Shift(2).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, fmt.Errorf("invalid amount %q: %w", value, ErrAmountOutOfRange)
	}
	return Amount(cents.IntPart()), nil
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// String renders the amount with a comma decimal separator, e.g. "1234,50".
func (a Amount) String() string {
	s := a.Decimal().StringFixed(2)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[:i] + "," + s[i+1:]
		}
	}
	return s
}

func normalizeDecimal(value string) string {
	out := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case ' ':
		case ',':
			out = append(out, '.')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// Event is something that happened to one entity. The name doubles as the
// routing key, e.g. product.created.
type Event interface {
	GetName() string
	GetEntityName() string
	GetEntityID() ID
	GetOccurredAt() time.Time
}

// ImageUpload is a file the client is submitting; it only lives for one request.
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}
