package validate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tonearm/tonearm/internal/model"
)

func TestNonEmpty(t *testing.T) {
	require.NoError(t, NonEmpty("name", "Ana"))
	require.Error(t, NonEmpty("name", ""))
	require.Error(t, NonEmpty("name", "   \t"), "whitespace-only is empty")
}

func TestEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@sub.example.com"}
	for _, v := range valid {
		require.NoError(t, Email(v), v)
	}
	invalid := []string{"", "no-at-sign", "a@b", "a b@c.de", "a@" + strings.Repeat("x", 320) + ".com"}
	for _, v := range invalid {
		require.Error(t, Email(v), v)
	}
}

func TestDateOrderEqualDatesFail(t *testing.T) {
	now := time.Now()
	require.NoError(t, DateOrder(now, now.Add(time.Hour)))
	require.Error(t, DateOrder(now, now), "identical dates must be rejected")
	require.Error(t, DateOrder(now.Add(time.Hour), now))
	require.Error(t, DateOrder(time.Time{}, now))
}

func TestFailuresWrapValidation(t *testing.T) {
	now := time.Now()
	for _, err := range []error{
		NonEmpty("x", ""),
		Email("bad"),
		Positive("amount", 0),
		PositiveInt("quantity", -1),
		DateOrder(now, now),
	} {
		require.True(t, errors.Is(err, model.ErrValidation), err)
	}
}

func TestOptionalFieldsPassWhenNil(t *testing.T) {
	require.NoError(t, IntRange("age", nil, 0, 120))
	require.NoError(t, MaxLen("bio", nil, 10))

	age := 130
	require.Error(t, IntRange("age", &age, 0, 120))
	bio := strings.Repeat("b", 11)
	require.Error(t, MaxLen("bio", &bio, 10))
}
