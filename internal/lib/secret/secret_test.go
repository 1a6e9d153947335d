package secret

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_UniqueV4(t *testing.T) {
	iss := NewIssuer()
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		s, err := iss.Issue()
		require.NoError(t, err)

		id, err := uuid.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())

		_, dup := seen[s]
		require.False(t, dup, "duplicate secret %s", s)
		seen[s] = struct{}{}
	}
}

func TestMatches(t *testing.T) {
	const stored = "9b2f9c1e-5d0a-4f0e-8f43-0d8c5a8f1e77"

	tests := []struct {
		name      string
		stored    string
		active    bool
		candidate string
		want      bool
	}{
		{name: "active and equal", stored: stored, active: true, candidate: stored, want: true},
		{name: "inactive", stored: stored, active: false, candidate: stored, want: false},
		{name: "different", stored: stored, active: true, candidate: "9b2f9c1e-5d0a-4f0e-8f43-0d8c5a8f1e78", want: false},
		{name: "prefix", stored: stored, active: true, candidate: stored[:10], want: false},
		{name: "empty candidate", stored: stored, active: true, candidate: "", want: false},
		{name: "empty stored", stored: "", active: true, candidate: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.stored, tt.active, tt.candidate))
		})
	}
}

func TestHashToken(t *testing.T) {
	a := HashToken("token-1")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashToken("token-1"))
	assert.NotEqual(t, a, HashToken("token-2"))
}
