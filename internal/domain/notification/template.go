package notification

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateData is the context a template renders against.
type TemplateData struct {
	IssueID    string
	IssueTitle string
	ActorName  string
	FromStatus string
	ToStatus   string
	Note       string
}

// Template renders the title and message for one template key.
type Template struct {
	key   string
	title *template.Template
	body  *template.Template
}

// NewTemplate parses title and body once so rendering never fails on syntax.
func NewTemplate(key, title, body string) (*Template, error) {
	if key == "" {
		return nil, fmt.Errorf("template key is required")
	}
	titleTmpl, err := template.New(key + ".title").Option("missingkey=error").Parse(title)
	if err != nil {
		return nil, fmt.Errorf("failed to parse title template %s: %w", key, err)
	}
	bodyTmpl, err := template.New(key + ".body").Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse body template %s: %w", key, err)
	}
	return &Template{key: key, title: titleTmpl, body: bodyTmpl}, nil
}

func (t *Template) Key() string {
	return t.key
}

// Render returns the rendered title and message.
func (t *Template) Render(data TemplateData) (string, string, error) {
	var title, body bytes.Buffer
	if err := t.title.Execute(&title, data); err != nil {
		return "", "", fmt.Errorf("failed to render title for %s: %w", t.key, err)
	}
	if err := t.body.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("failed to render message for %s: %w", t.key, err)
	}
	return title.String(), body.String(), nil
}

// Catalog looks templates up by key.
type Catalog struct {
	templates map[string]*Template
}

func NewCatalog(templates ...*Template) *Catalog {
	c := &Catalog{templates: make(map[string]*Template, len(templates))}
	for _, t := range templates {
		c.templates[t.key] = t
	}
	return c
}

// Lookup reports whether a template exists for key.
func (c *Catalog) Lookup(key string) (*Template, bool) {
	t, ok := c.templates[key]
	return t, ok
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

var defaultTemplateText = []struct{ key, title, body string }{
	{"issue.approved", "Your issue was approved", `"{{.IssueTitle}}" is now open and visible to everyone.`},
	{"issue.rejected", "Your issue was rejected", `"{{.IssueTitle}}" was rejected{{if .Note}}: {{.Note}}{{end}}. You can contest this within 7 days.`},
	{"issue.resolved", "Your issue was resolved", `"{{.IssueTitle}}" was marked resolved{{if .Note}}: {{.Note}}{{end}}. Contest within 7 days if it is not fixed.`},
	{"issue.contest_received", "Your issue was contested", `Someone contested the outcome of "{{.IssueTitle}}".`},
	{"issue.escalated", "Your issue is awaiting revalidation", `"{{.IssueTitle}}" received enough contests and is back with the administration.`},
	{"issue.reopened", "Your issue was reopened", `"{{.IssueTitle}}" is open again.`},
	{"issue.contest_dismissed", "Contests on your issue were dismissed", `The administration dismissed the contests on "{{.IssueTitle}}"{{if .Note}}: {{.Note}}{{end}}.`},
	{"issue.re_resolved", "Your issue was re-resolved", `"{{.IssueTitle}}" has a new resolution. Students can confirm or reject it for 7 days.`},
	{"issue.final_closed", "Your issue is closed", `Students confirmed the resolution of "{{.IssueTitle}}".`},
}

// DefaultCatalog returns the built-in templates for every notifiable
// lifecycle event.
func DefaultCatalog() *Catalog {
	templates := make([]*Template, 0, len(defaultTemplateText))
	for _, d := range defaultTemplateText {
		templates = append(templates, mustTemplate(d.key, d.title, d.body))
	}
	return NewCatalog(templates...)
}

func mustTemplate(key, title, body string) *Template {
	t, err := NewTemplate(key, title, body)
	if err != nil {
		panic(err)
	}
	return t
}
