package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyles_PlainWhenNotTerminal(t *testing.T) {
	if IsTerminal() {
		t.Skip("requires a non-interactive stdout")
	}

	// Under a piped stdout the styles must not inject escape codes.
	assert.Equal(t, "9.5", StyleGreen.Render("9.5"))
	assert.Equal(t, "Summary", StyleHeader.Render("Summary"))
	assert.Equal(t, "abc12345", StyleDim.Render("abc12345"))
}
