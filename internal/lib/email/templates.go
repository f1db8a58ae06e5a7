package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
)

// Template names an embedded HTML template (templates/<name>.html).
type Template string

const (
	TemplateWelcome      Template = "welcome"
	TemplateNotification Template = "notification"
)

//go:embed templates/*.html
var templateFS embed.FS

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.html", name))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}

	return body.String(), nil
}
