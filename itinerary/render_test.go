package itinerary

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewChromeRenderer_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultRenderTimeout, NewChromeRenderer(0).Timeout)
	assert.Equal(t, 10*time.Second, NewChromeRenderer(10*time.Second).Timeout)
}

func TestFullPrintParams(t *testing.T) {
	en := fullPrintParams(LangEN)
	assert.True(t, en.PrintBackground)
	assert.True(t, en.DisplayHeaderFooter)
	assert.Equal(t, 0.5, en.MarginBottom)
	assert.NotContains(t, en.FooterTemplate, "direction:rtl")

	ar := fullPrintParams(LangAR)
	assert.Contains(t, ar.FooterTemplate, "direction:rtl")
}

func TestMinimalPrintParams(t *testing.T) {
	params := minimalPrintParams()
	assert.True(t, params.PrintBackground)
	assert.False(t, params.DisplayHeaderFooter)
}

func TestRenderError(t *testing.T) {
	cause := errors.New("tab crashed")
	err := &RenderError{Stage: "print", Err: cause}

	assert.Contains(t, err.Error(), "print")
	assert.ErrorIs(t, err, cause)
}
