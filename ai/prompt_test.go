package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		p := BuildPrompt("where can I eat?", "=== RESTAURANTS ===", LanguageEnglish)
		assert.Contains(t, p, "Available Data:\n=== RESTAURANTS ===")
		assert.Contains(t, p, "User Question: where can I eat?")
		assert.Contains(t, p, "**BAKERIES**")
		assert.Contains(t, p, "Respond entirely in English")
		assert.NotContains(t, p, "%!")
	})

	t.Run("french", func(t *testing.T) {
		p := BuildPrompt("où manger?", NoContextText, LanguageFrench)
		assert.Contains(t, p, "**BOULANGERIES**")
		assert.Contains(t, p, "Emplacement")
		assert.Contains(t, p, "Respond entirely in French")
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		assert.Equal(t,
			BuildPrompt("q", "c", LanguageEnglish),
			BuildPrompt("q", "c", Language("de")))
	})
}
