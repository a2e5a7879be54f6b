// Package audit appends entries to the system activity log.
package audit

import (
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	activitydomain "claimflow/internal/activity/domain"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
)

// ActivityLogger records a single activity event. Best-effort: it never
// fails the caller; problems are logged and dropped.
type ActivityLogger interface {
	LogEvent(actor *userdomain.User, action, entityType, entityID, details string)
}

// Logger implements ActivityLogger against the dataset store. Entry ids
// are ULIDs so the append-only log stays time-ordered by id.
type Logger struct {
	store *store.Store
	log   *zap.Logger
	nowF  func() time.Time
}

// NewLogger returns an ActivityLogger writing to st.
func NewLogger(st *store.Store, log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{
		store: st,
		log:   log,
		nowF:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the logger's clock. Used by tests.
func (l *Logger) WithClock(nowF func() time.Time) *Logger {
	l.nowF = nowF
	return l
}

// LogEvent appends one activity entry. A nil actor is recorded as the
// system acting on its own behalf.
func (l *Logger) LogEvent(actor *userdomain.User, action, entityType, entityID, details string) {
	if l.store == nil {
		return
	}
	entry := &activitydomain.Entry{
		ID:         ulid.Make().String(),
		Timestamp:  l.nowF(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if actor != nil {
		entry.UserID = actor.ID
		entry.UserName = actor.Name
	}
	l.store.AppendActivity(entry)
	l.log.Debug("activity recorded",
		zap.String("action", action),
		zap.String("entity_type", entityType),
		zap.String("entity_id", entityID))
}
