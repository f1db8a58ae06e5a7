package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreviewData(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			body, err := Render(name, data)
			require.NoError(t, err)
			assert.Contains(t, body, data["Username"])
		})
	}
}

func TestRenderNotificationEscapesMessage(t *testing.T) {
	body, err := Render(TemplateNotification, map[string]string{
		"Username": "jdoe",
		"Message":  "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}
