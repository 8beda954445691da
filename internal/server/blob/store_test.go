package blob

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomKey(t *testing.T) {
	key := RandomKey("alice")

	assert.True(t, strings.HasPrefix(key, "screenshots/alice/"))

	// uuid suffix makes keys unique
	require.NotEqual(t, key, RandomKey("alice"))
}
