package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "jane-doe", Make("Jane Doe"))
	assert.Equal(t, "alice", Make("alice"))
	assert.Equal(t, "mary-jane-watson", Make("Mary Jane Watson"))
}

func TestMake_Idempotent(t *testing.T) {
	for _, username := range []string{"Jane Doe", "ALICE", "a b c", ""} {
		once := Make(username)
		assert.Equal(t, once, Make(once))
	}
}
