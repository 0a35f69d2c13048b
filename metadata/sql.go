package metadata

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	headerVersionQuery = `SELECT to_char(last_mod_date, 'YYYY-MM-DD"T"HH24:MI:SS.MS')
FROM dbcm.dp_tracking WHERE dp_id = $1`

	keywordsQuery = `SELECT kw_name, kw_value, kw_type, kw_comment
FROM dbcm.keywords_repository
WHERE dp_id = $1 ORDER BY ext_id, kw_ind`
)

// SQLSource reads archived headers from the keyword repository database.
type SQLSource struct {
	db *sql.DB
}

// NewSQLSource wraps an open database handle. Close closes db.
func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

// OpenSQL connects to the PostgreSQL database at dsn.
func OpenSQL(ctx context.Context, dsn string) (*SQLSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open keyword repository")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "connect to keyword repository")
	}
	return NewSQLSource(db), nil
}

func (s *SQLSource) LookupHeaderVersion(ctx context.Context, fileID string) (string, error) {
	var hdrver string
	err := s.db.QueryRowContext(ctx, headerVersionQuery, fileID).Scan(&hdrver)
	if err == sql.ErrNoRows {
		return "", errors.Wrap(ErrNotFound, fileID)
	}
	if err != nil {
		return "", errors.Wrap(err, "query header version")
	}
	return hdrver, nil
}

func (s *SQLSource) LookupKeywords(ctx context.Context, fileID string) ([]Keyword, error) {
	rows, err := s.db.QueryContext(ctx, keywordsQuery, fileID)
	if err != nil {
		return nil, errors.Wrap(err, "query keywords")
	}
	defer rows.Close()

	var kws []Keyword
	for rows.Next() {
		var name string
		var value, typ, comment sql.NullString
		if err := rows.Scan(&name, &value, &typ, &comment); err != nil {
			return nil, errors.Wrap(err, "scan keyword")
		}
		kws = append(kws, Keyword{Name: name, Value: value.String, Type: typ.String, Comment: comment.String})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read keywords")
	}
	if len(kws) == 0 {
		return nil, errors.Wrap(ErrNotFound, fileID)
	}
	return kws, nil
}

func (s *SQLSource) Close() error {
	return s.db.Close()
}
