package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlain_IsMarkedPlainAndRendersIdentity(t *testing.T) {
	th := Plain()
	assert.True(t, th.IsPlain())
	assert.Equal(t, "hello", th.Title.Render("hello"))
	assert.Equal(t, "hello", th.Cursor.Render("hello"))
	assert.Equal(t, "hello", th.Muted.Render("hello"))
	assert.Equal(t, "hello", th.Match.Render("hello"))
}

func TestDark_IsNotMarkedPlain(t *testing.T) {
	th := Dark()
	assert.False(t, th.IsPlain())
}
