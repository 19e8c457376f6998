package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5("test@example.com") = 55502f40dc8b7c769880b10874abc9d0
	assert.Equal(t,
		"https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?s=200&r=pg&d=mm",
		URL("test@example.com"),
	)
}

func TestURL_NormalizesCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, URL("test@example.com"), URL("  Test@Example.COM "))
}
