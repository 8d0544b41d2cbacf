// Test Type: Unit Test
// Description: Tests for the style registry - embedded sheet loading and
// lookup fallback

package styles_test

import (
	"testing"

	"github.com/arthur-debert/csvsieve/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
)

func TestGetStyle(t *testing.T) {
	t.Run("known_styles_exist", func(t *testing.T) {
		for _, name := range []string{"Error", "Warning", "Success", "Header", "Muted"} {
			style := styles.GetStyle(name)
			// Rendering must not panic and must keep the text.
			assert.Contains(t, style.Render("x"), "x", "style %s", name)
		}
	})

	t.Run("unknown_style_falls_back_to_plain", func(t *testing.T) {
		style := styles.GetStyle("DoesNotExist")
		assert.Equal(t, "plain", style.Render("plain"))
	})
}
