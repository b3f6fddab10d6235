package postgres

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
)

// psql is the squirrel builder for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Builder returns the shared $-placeholder statement builder.
func Builder() sq.StatementBuilderType { return psql }

// Field is one column assignment of a patch.
type Field struct {
	Column string
	Value  any
}

// AppendOptional adds col when o is set, converting the value with conv.
// An explicit null binds SQL NULL.
func AppendOptional[T any](fields []Field, col string, o domain.Optional[T], conv func(T) any) []Field {
	if !o.Set {
		return fields
	}
	if o.Null {
		return append(fields, Field{Column: col, Value: nil})
	}
	if conv == nil {
		return append(fields, Field{Column: col, Value: o.Value})
	}
	return append(fields, Field{Column: col, Value: conv(o.Value)})
}

// UpdateBuilder builds ownership-scoped UPDATE statements over a closed set
// of columns fixed at construction. Request keys never reach it directly.
type UpdateBuilder struct {
	table     string
	columns   map[string]struct{}
	returning string
}

// NewUpdateBuilder panics on an empty allowlist; it is called at package init.
func NewUpdateBuilder(table string, columns []string, returning string) *UpdateBuilder {
	if len(columns) == 0 {
		panic("postgres: update builder for " + table + " has no columns")
	}
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return &UpdateBuilder{table: table, columns: set, returning: returning}
}

// Build returns
//
//	UPDATE <table> SET c1 = $1, ..., updated_at = NOW()
//	WHERE id = $n AND user_id = $n+1 AND deleted_at IS NULL RETURNING ...
//
// Zero fields yields domain.ErrNoFieldsToUpdate.
func (b *UpdateBuilder) Build(id, userID uuid.UUID, fields []Field) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, domain.ErrNoFieldsToUpdate
	}

	q := psql.Update(b.table)
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := b.columns[f.Column]; !ok {
			return "", nil, fmt.Errorf("update %s: column %q is not updatable", b.table, f.Column)
		}
		if _, dup := seen[f.Column]; dup {
			return "", nil, fmt.Errorf("update %s: column %q set twice", b.table, f.Column)
		}
		seen[f.Column] = struct{}{}
		q = q.Set(f.Column, f.Value)
	}

	q = q.Set("updated_at", sq.Expr("NOW()")).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Where("deleted_at IS NULL")

	if b.returning != "" {
		q = q.Suffix("RETURNING " + strings.TrimSpace(b.returning))
	}

	return q.ToSql()
}
