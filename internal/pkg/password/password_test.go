package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("tresorier-2024")
	require.NoError(t, err)
	require.NotEqual(t, "tresorier-2024", hash)

	require.True(t, Verify("tresorier-2024", hash))
	require.False(t, Verify("wrong", hash))
}

func TestHashTokenIsDeterministic(t *testing.T) {
	a := HashToken("refresh-abc")
	b := HashToken("refresh-abc")
	require.Equal(t, a, b)
	require.Len(t, a, 64)
	require.NotEqual(t, a, HashToken("refresh-def"))
}

func TestAcceptable(t *testing.T) {
	require.False(t, Acceptable("short"))
	require.True(t, Acceptable("longenough"))
}
