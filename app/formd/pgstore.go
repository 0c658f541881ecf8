package formd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/emmydush/businessos/integration/database/pg"
)

const insertSubmission = `
INSERT INTO submissions (id, form, payload, attachments, unique_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// PGStore persists submissions in the submissions table.
// Create joins the transaction stored in ctx by pg.WithTx, if any.
type PGStore struct {
	db pg.Querier
}

// NewPGStore returns a Store backed by db, usually a *pgxpool.Pool.
func NewPGStore(db pg.Querier) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, sub *Submission) error {
	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("%w: encode payload: %w", ErrStoreFailed, err)
	}
	attachments := sub.Attachments
	if attachments == nil {
		attachments = []Attachment{}
	}
	files, err := json.Marshal(attachments)
	if err != nil {
		return fmt.Errorf("%w: encode attachments: %w", ErrStoreFailed, err)
	}

	var uniqueKey *string
	if sub.UniqueKey != "" {
		uniqueKey = &sub.UniqueKey
	}

	_, err = pg.QuerierFrom(ctx, s.db).Exec(ctx, insertSubmission,
		sub.ID, sub.Form, payload, files, uniqueKey, sub.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, pg.ConstraintName(err))
		}
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}
	return nil
}
