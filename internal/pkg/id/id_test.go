package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	got := New(TransactionPrefix)
	require.Regexp(t, regexp.MustCompile(`^TXN\d{13}[0-9a-f]{8}$`), got)

	got = New(NotificationPrefix)
	require.Regexp(t, regexp.MustCompile(`^NOT\d{13}[0-9a-f]{8}$`), got)
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		v := New(TransactionPrefix)
		_, dup := seen[v]
		assert.False(t, dup, "duplicate id %s", v)
		seen[v] = struct{}{}
	}
}
