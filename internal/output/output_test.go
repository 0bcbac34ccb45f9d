package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlainWhenNoColor(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	assert.Equal(t, "done", render(successStyle, "done"))
	assert.Equal(t, "failed", render(errorStyle, "failed"))
	assert.Equal(t, "   detail", render(stepStyle, "   detail"))
}

func TestRenderKeepsMessageText(t *testing.T) {
	SetNoColor(false)

	assert.Contains(t, render(infoStyle, "scanning sources"), "scanning sources")
	assert.Contains(t, render(successStyle, "✅ ok"), "✅ ok")
}
