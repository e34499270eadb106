package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/lottery-manager/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	// WaitingPool is the persistence boundary of the lottery engine.
	WaitingPool interface {
		// AddEntry creates a waiting entry. A second entry for the same event and
		// entrant is rejected with gerr.ErrAlreadyJoined.
		AddEntry(ctx context.Context, ins *entity.WaitingPoolEntryInsert) (*entity.WaitingPoolEntry, error)
		// GetEntryById returns gerr.ErrEntryNotFound when the entry does not exist.
		GetEntryById(ctx context.Context, id string) (*entity.WaitingPoolEntry, error)
		// FindByEventAndEntrant returns nil without error when the entrant never joined.
		FindByEventAndEntrant(ctx context.Context, eventId string, entrantId string) (*entity.WaitingPoolEntry, error)
		// LoadByStatus returns the entries of an event in the given status.
		LoadByStatus(ctx context.Context, eventId string, status entity.EntryStatus) ([]entity.WaitingPoolEntry, error)
		// ListByStatus returns the entries of every event in the given status.
		ListByStatus(ctx context.Context, status entity.EntryStatus) ([]entity.WaitingPoolEntry, error)
		// ListByEntrant returns every entry of an entrant, newest join first.
		ListByEntrant(ctx context.Context, entrantId string) ([]entity.WaitingPoolEntry, error)
		// CountByEvent returns the number of entries of an event in any status.
		CountByEvent(ctx context.Context, eventId string) (int, error)
		// BatchTransition applies upd to every id atomically. If any id is missing or
		// not in status from, nothing is written and gerr.ErrConflict is returned.
		BatchTransition(ctx context.Context, ids []string, from entity.EntryStatus, upd entity.EntryUpdate) error
		// UpdateOne applies upd to a single entry that must still be in status from.
		UpdateOne(ctx context.Context, id string, from entity.EntryStatus, upd entity.EntryUpdate) error
	}

	Notifications interface {
		AddNotifications(ctx context.Context, ns []entity.NotificationInsert) ([]entity.Notification, error)
		GetNotificationsForUser(ctx context.Context, userId string) ([]entity.Notification, error)
		MarkRead(ctx context.Context, id string) error
		GetUnsentEmails(ctx context.Context, limit int) ([]entity.Notification, error)
		MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error
		AddEmailError(ctx context.Context, id string, errMsg string) error
	}

	Repository interface {
		ContextStore
		WaitingPool() WaitingPool
		Notifications() Notifications
		DB() DB
		Now() time.Time
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		InTx() bool
		Ping(ctx context.Context) error
		Close()
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Notifier consumes draw results and organizer broadcasts.
	Notifier interface {
		NotifySelected(ctx context.Context, winners []entity.WaitingPoolEntry) error
		NotifyNotSelected(ctx context.Context, eventId string, winners []entity.WaitingPoolEntry) error
		NotifyEntrants(ctx context.Context, eventId string, status entity.EntryStatus, title string, message string) (int, error)
	}

	// Lottery is the part of the engine driven by background workers.
	Lottery interface {
		Expire(ctx context.Context, entryId string) (*entity.WaitingPoolEntry, error)
		Replenish(ctx context.Context, req entity.DrawRequest) ([]entity.WaitingPoolEntry, error)
		DefaultResponseWindowHours() int
	}

	// Sender delivers a single e-mail.
	Sender interface {
		Send(ctx context.Context, msg *mail.SGMailV3) error
	}
)
