package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

func dialectFor(driverName string) (dialect, error) {
	switch driverName {
	case "pgx", "postgres":
		return dialectPostgres, nil
	case "sqlite":
		return dialectSQLite, nil
	default:
		return 0, fmt.Errorf("unsupported database driver %q", driverName)
	}
}

var _ domain.DocumentStore = (*SQLDocumentStore)(nil)

// SQLDocumentStore maps collections onto a single documents table keyed by (path, id).
// Postgres keeps data as JSONB, SQLite as JSON text.
type SQLDocumentStore struct {
	db      *sqlx.DB
	dialect dialect
}

func NewSQLDocumentStore(db *sqlx.DB) (*SQLDocumentStore, error) {
	d, err := dialectFor(db.DriverName())
	if err != nil {
		return nil, err
	}
	return &SQLDocumentStore{db: db, dialect: d}, nil
}

type documentRow struct {
	ID        string    `db:"id"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r documentRow) toDomain() *domain.Document {
	return &domain.Document{
		ID:        r.ID,
		Data:      r.Data,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// fieldExpr extracts a top-level string field with byte-wise ordering.
// field must have passed domain.ValidateFieldName.
func (s *SQLDocumentStore) fieldExpr(field string) string {
	if s.dialect == dialectSQLite {
		return fmt.Sprintf("json_extract(data, '$.%s')", field)
	}
	return fmt.Sprintf(`(data->>'%s') COLLATE "C"`, field)
}

func (s *SQLDocumentStore) dataParam() string {
	if s.dialect == dialectSQLite {
		return "?"
	}
	return "?::jsonb"
}

func (s *SQLDocumentStore) selectDocs(ctx context.Context, query string, args ...any) ([]*domain.Document, error) {
	var rows []documentRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("document query failed: %w", err)
	}
	docs := make([]*domain.Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, r.toDomain())
	}
	return docs, nil
}

func (s *SQLDocumentStore) Get(ctx context.Context, path domain.CollectionPath, id string) (*domain.Document, error) {
	var row documentRow
	query := s.db.Rebind(`SELECT id, data, created_at, updated_at FROM documents WHERE path = ? AND id = ?`)

	if err := s.db.GetContext(ctx, &row, query, string(path), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document failed: %w", err)
	}
	return row.toDomain(), nil
}

func (s *SQLDocumentStore) Put(ctx context.Context, path domain.CollectionPath, doc *domain.Document) error {
	if err := domain.ValidateDocumentData(doc.Data); err != nil {
		return err
	}
	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}

	query := s.db.Rebind(fmt.Sprintf(`
        INSERT INTO documents (path, id, data, created_at, updated_at)
        VALUES (?, ?, %s, ?, ?)
        ON CONFLICT (path, id) DO UPDATE SET
            data = excluded.data,
            updated_at = excluded.updated_at`, s.dataParam()))

	_, err := s.db.ExecContext(ctx, query,
		string(path), doc.ID, string(doc.Data), doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("put document failed: %w", err)
	}

	// a replace keeps the original creation time
	var createdAt time.Time
	err = s.db.GetContext(ctx, &createdAt,
		s.db.Rebind(`SELECT created_at FROM documents WHERE path = ? AND id = ?`), string(path), doc.ID)
	if err != nil {
		return fmt.Errorf("read back document failed: %w", err)
	}

	doc.CreatedAt = createdAt.UTC()
	return nil
}

func (s *SQLDocumentStore) Replace(ctx context.Context, path domain.CollectionPath, doc *domain.Document) error {
	if err := domain.ValidateDocumentData(doc.Data); err != nil {
		return err
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}

	query := s.db.Rebind(fmt.Sprintf(`
        UPDATE documents SET data = %s, updated_at = ?
        WHERE path = ? AND id = ?`, s.dataParam()))

	res, err := s.db.ExecContext(ctx, query, string(doc.Data), doc.UpdatedAt, string(path), doc.ID)
	if err != nil {
		return fmt.Errorf("replace document failed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace document failed: %w", err)
	}
	if n == 0 {
		return domain.ErrDocumentNotFound
	}

	var createdAt time.Time
	err = s.db.GetContext(ctx, &createdAt,
		s.db.Rebind(`SELECT created_at FROM documents WHERE path = ? AND id = ?`), string(path), doc.ID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// deleted right after the update; the update itself succeeded
		return nil
	case err != nil:
		return fmt.Errorf("read back document failed: %w", err)
	}
	doc.CreatedAt = createdAt.UTC()
	return nil
}

func (s *SQLDocumentStore) Delete(ctx context.Context, path domain.CollectionPath, id string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM documents WHERE path = ? AND id = ?`), string(path), id)
	if err != nil {
		return fmt.Errorf("delete document failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (s *SQLDocumentStore) QueryRange(ctx context.Context, path domain.CollectionPath, field, start, end string) ([]*domain.Document, error) {
	if err := domain.ValidateFieldName(field); err != nil {
		return nil, err
	}
	expr := s.fieldExpr(field)

	query := fmt.Sprintf(`
        SELECT id, data, created_at, updated_at FROM documents
        WHERE path = ? AND %[1]s >= ? AND %[1]s <= ?
        ORDER BY %[1]s ASC, created_at ASC, id ASC`, expr)

	return s.selectDocs(ctx, query, string(path), start, end)
}

func (s *SQLDocumentStore) QueryAll(ctx context.Context, path domain.CollectionPath) ([]*domain.Document, error) {
	query := `
        SELECT id, data, created_at, updated_at FROM documents
        WHERE path = ?
        ORDER BY created_at ASC, id ASC`

	return s.selectDocs(ctx, query, string(path))
}

func (s *SQLDocumentStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
