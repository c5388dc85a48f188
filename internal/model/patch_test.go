package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestUserPatchMergesOnlySetFields(t *testing.T) {
	age := 31
	orig := User{ID: "1", Name: "Ana", Email: "ana@example.com", Age: &age}

	now := time.Now().UTC()
	got := UserPatch{Name: strp("Ana Maria")}.Apply(orig, now)

	require.Equal(t, "Ana Maria", got.Name)
	require.Equal(t, "ana@example.com", got.Email, "unset fields survive")
	require.Equal(t, &age, got.Age)
	require.NotNil(t, got.UpdatedAt)
	require.Equal(t, now, *got.UpdatedAt)

	// The input record is left alone.
	require.Equal(t, "Ana", orig.Name)
	require.Nil(t, orig.UpdatedAt)
}

func TestArtistPatchCopiesSocialLinks(t *testing.T) {
	social := SocialLinks{Instagram: strp("https://instagram.com/x")}
	got := ArtistPatch{Social: &social}.Apply(Artist{ID: "1", Name: "X"}, time.Now())

	require.NotNil(t, got.Social)
	require.NotSame(t, &social, got.Social, "patch must not alias its input")
	require.Equal(t, social, *got.Social)
}

func TestMembershipPatchStatus(t *testing.T) {
	st := StatusExpired
	got := MembershipPatch{Status: &st}.Apply(Membership{ID: "1", Status: StatusActive}, time.Now())
	require.Equal(t, StatusExpired, got.Status)
}

func TestParseUnknownVariants(t *testing.T) {
	require.Equal(t, StatusActive, ParseMembershipStatus("active"))
	require.Equal(t, StatusUnknown, ParseMembershipStatus("suspended"))
	require.Equal(t, StatusUnknown, ParseMembershipStatus(""))

	require.Equal(t, KindSale, ParseTransactionKind("sale"))
	require.Equal(t, KindUnknown, ParseTransactionKind("refund"))

	require.Equal(t, TxCancelled, ParseTransactionStatus("cancelled"))
	require.Equal(t, TxUnknown, ParseTransactionStatus("canceled"))
}
