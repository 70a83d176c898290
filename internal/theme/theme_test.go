package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bark-log/bark/internal/logline"
)

func TestElevenBuiltInThemesAreRegistered(t *testing.T) {
	assert.Len(t, Names(), 11)
}

func TestDefaultThemeResolves(t *testing.T) {
	_, ok := Get(DefaultName)
	assert.True(t, ok)
}

func TestGetUnknownNameReportsNotOK(t *testing.T) {
	_, ok := Get("not-a-real-theme")
	assert.False(t, ok)
}

func TestForLevelCoversEveryLevel(t *testing.T) {
	th, ok := Get(DefaultName)
	assert.True(t, ok)
	for _, l := range []logline.Level{
		logline.LevelUnknown, logline.LevelTrace, logline.LevelDebug,
		logline.LevelInfo, logline.LevelWarn, logline.LevelError,
	} {
		assert.NotNil(t, th.ForLevel(l))
	}
}

func TestEveryThemeHasEightSourceSlots(t *testing.T) {
	for _, name := range Names() {
		th, _ := Get(name)
		assert.Len(t, th.Sources, 8)
		for _, s := range th.Sources {
			assert.NotEmpty(t, s.Render("x"))
		}
	}
}
