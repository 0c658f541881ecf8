package formd

import (
	"context"
	"embed"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Migrations holds the goose migrations for the submissions table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations passed to pg.Migrate.
const MigrationsDir = "migrations"

// Attachment is a stored upload referenced by a submission.
type Attachment struct {
	Field       string `json:"field"`
	Key         string `json:"key"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
}

// Submission is an accepted, sanitized form payload.
type Submission struct {
	ID          uuid.UUID      `json:"id"`
	Form        string         `json:"form"`
	Payload     map[string]any `json:"payload"`
	Attachments []Attachment   `json:"attachments,omitempty"`
	// UniqueKey is the normalized value of the form's unique field, if any.
	UniqueKey string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists submissions. Create returns ErrDuplicate when another
// submission of the same form already holds UniqueKey.
type Store interface {
	Create(ctx context.Context, s *Submission) error
}

// MemoryStore is a Store for development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]Submission
	unique map[string]uuid.UUID
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[uuid.UUID]Submission),
		unique: make(map[string]uuid.UUID),
	}
}

func (m *MemoryStore) Create(ctx context.Context, s *Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var uniqueKey string
	if s.UniqueKey != "" {
		uniqueKey = s.Form + "\x00" + s.UniqueKey
		if _, taken := m.unique[uniqueKey]; taken {
			return ErrDuplicate
		}
	}

	stored := *s
	stored.Payload = maps.Clone(s.Payload)
	stored.Attachments = append([]Attachment(nil), s.Attachments...)
	m.byID[s.ID] = stored
	if uniqueKey != "" {
		m.unique[uniqueKey] = s.ID
	}
	return nil
}

// Get returns the submission stored under id.
func (m *MemoryStore) Get(id uuid.UUID) (Submission, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byID[id]
	return s, ok
}

// Len returns the number of stored submissions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}
