// Package notify records in-app notifications for entrants and delivers the
// e-mail copies in the background.
package notify

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/jekabolt/lottery-manager/internal/dependency"
	"github.com/jekabolt/lottery-manager/internal/entity"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey         string        `mapstructure:"sendgrid_api_key"`
	FromEmail      string        `mapstructure:"from_email"`
	FromName       string        `mapstructure:"from_email_name"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	BatchSize      int           `mapstructure:"batch_size"`
	Concurrency    int           `mapstructure:"concurrency"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: time.Minute,
		BatchSize:      100,
		Concurrency:    4,
	}
}

// Notifier writes draw result and organizer notifications and sends their e-mails.
type Notifier struct {
	notifications dependency.Notifications
	pool          dependency.WaitingPool
	sender        dependency.Sender
	from          *mail.Email
	c             *Config
	now           func() time.Time
	ctx           context.Context
	cancel        context.CancelFunc
	templates     map[entity.NotificationType]*template.Template
	// windowHours is used for winners whose entry carries no response window.
	windowHours int
}

// Option customises a Notifier.
type Option func(*Notifier)

// WithDefaultResponseWindow sets the window used to render deadlines of
// winners that have none stored, normally the engine default.
func WithDefaultResponseWindow(hours int) Option {
	return func(n *Notifier) {
		if hours > 0 && hours <= entity.MaxResponseWindowHours {
			n.windowHours = hours
		}
	}
}

// New creates a notifier. A nil sender disables e-mail delivery; notifications
// are still recorded in-app.
func New(c *Config, notifications dependency.Notifications, pool dependency.WaitingPool, sender dependency.Sender, opts ...Option) (*Notifier, error) {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = time.Minute
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
	if sender != nil && (c.FromEmail == "" || c.FromName == "") {
		return nil, fmt.Errorf("incomplete config: from_email and from_email_name are required")
	}

	n := &Notifier{
		notifications: notifications,
		pool:          pool,
		sender:        sender,
		from:          mail.NewEmail(c.FromName, c.FromEmail),
		c:             c,
		now:           time.Now,
		templates:     make(map[entity.NotificationType]*template.Template),
		windowHours:   entity.DefaultResponseWindowHours,
	}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return n, nil
}

func (n *Notifier) parseTemplates() error {
	templateDir := "templates"
	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, filepath.Join(templateDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		n.templates[entity.NotificationType(name)] = tmpl
	}

	for _, nt := range []entity.NotificationType{entity.NotificationSelection, entity.NotificationNotSelected, entity.NotificationOrganizerMessage} {
		if _, ok := n.templates[nt]; !ok {
			return fmt.Errorf("template not found: %v", nt)
		}
	}
	return nil
}

// buildMail renders the e-mail copy of a stored notification.
func (n *Notifier) buildMail(rec *entity.Notification) (*mail.SGMailV3, error) {
	if !rec.Email.Valid || rec.Email.String == "" {
		return nil, fmt.Errorf("notification %s has no e-mail address", rec.Id)
	}
	tmpl, ok := n.templates[rec.Type]
	if !ok {
		return nil, fmt.Errorf("template not found: %v", rec.Type)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, rec); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	to := mail.NewEmail("", rec.Email.String)
	return mail.NewSingleEmail(n.from, rec.Title, to, rec.Message, body.String()), nil
}
