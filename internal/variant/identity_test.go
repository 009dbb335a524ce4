package variant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"coral":    "Coral",
		"Coral":    "Coral",
		"sky blue": "Sky Blue",
		"  mint ":  "Mint",
	}
	for input, want := range cases {
		require.Equal(t, want, Canonical(input), input)
	}
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	id, err := NewIdentity("coral")
	require.NoError(t, err)
	require.Equal(t, Identity{Name: "coral", Canonical: "Coral"}, id)
}

func TestValidateNameRejectsUnsafeNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", ".", "..", "a/b", `a\b`, "nul\x00"} {
		require.Error(t, ValidateName(name), "%q", name)
	}
	require.NoError(t, ValidateName("Ocean Blue"))
}
