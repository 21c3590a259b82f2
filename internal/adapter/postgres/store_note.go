package postgres

import (
	"context"
	"fmt"

	"github.com/noteloft/noteloft/internal/domain"
	"github.com/noteloft/noteloft/internal/domain/identity"
	"github.com/noteloft/noteloft/internal/domain/note"
	"github.com/noteloft/noteloft/internal/domain/tenant"
)

const noteColumns = `id, title, content, user_id, tenant_id, created_at, updated_at`

func scanNote(row scannable) (note.Note, error) {
	var n note.Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.UserID, &n.TenantID, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// scopeClause renders an identity.Scope as SQL conditions. args must
// already hold the leading positional arguments.
func scopeClause(scope identity.Scope, args []any) (string, []any) {
	args = append(args, scope.TenantID)
	clause := fmt.Sprintf("tenant_id = $%d", len(args))
	if scope.UserID != "" {
		args = append(args, scope.UserID)
		clause += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	return clause, args
}

func (s *Store) ListNotes(ctx context.Context, scope identity.Scope) ([]note.Note, error) {
	clause, args := scopeClause(scope, nil)
	rows, err := s.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE `+clause+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *Store) GetNote(ctx context.Context, id string, scope identity.Scope) (*note.Note, error) {
	clause, args := scopeClause(scope, []any{id})
	row := s.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND `+clause, args...)

	n, err := scanNote(row)
	if err != nil {
		return nil, notFoundWrap(err, "get note %s", id)
	}
	return &n, nil
}

// CreateNote inserts a note, enforcing the free-plan cap atomically. The
// tenant row is locked for the duration of the transaction so concurrent
// creates at the cap serialize instead of both passing the count check.
func (s *Store) CreateNote(ctx context.Context, n *note.Note) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create note: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var plan tenant.Plan
	err = tx.QueryRow(ctx,
		`SELECT subscription_plan FROM tenants WHERE id = $1 FOR UPDATE`,
		n.TenantID).Scan(&plan)
	if err != nil {
		return notFoundWrap(err, "lock tenant %s", n.TenantID)
	}

	if plan == tenant.PlanFree {
		var count int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM notes WHERE tenant_id = $1`, n.TenantID).Scan(&count)
		if err != nil {
			return fmt.Errorf("count notes: %w", err)
		}
		if count >= tenant.FreePlanNoteLimit {
			return domain.ErrNoteLimit
		}
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO notes (id, title, content, user_id, tenant_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		n.ID, n.Title, n.Content, n.UserID, n.TenantID)
	if err := row.Scan(&n.CreatedAt, &n.UpdatedAt); err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create note: %w", err)
	}
	return nil
}

func (s *Store) UpdateNote(ctx context.Context, id string, req note.UpdateRequest, scope identity.Scope) (*note.Note, error) {
	clause, args := scopeClause(scope, []any{id})

	set := "updated_at = now()"
	if req.Title != nil {
		args = append(args, *req.Title)
		set += fmt.Sprintf(", title = $%d", len(args))
	}
	if req.Content != nil {
		args = append(args, *req.Content)
		set += fmt.Sprintf(", content = $%d", len(args))
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE notes SET `+set+` WHERE id = $1 AND `+clause+` RETURNING `+noteColumns, args...)

	n, err := scanNote(row)
	if err != nil {
		return nil, notFoundWrap(err, "update note %s", id)
	}
	return &n, nil
}

func (s *Store) DeleteNote(ctx context.Context, id string, scope identity.Scope) error {
	clause, args := scopeClause(scope, []any{id})
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND `+clause, args...)
	return execExpectOne(tag, err, "delete note %s", id)
}
