//go:build unit

package pgconv_test

import (
	"fmt"
	"testing"
	"time"

	"retail-ops-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimePtrRoundTrip(t *testing.T) {
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))

	jst := time.FixedZone("JST", 9*60*60)
	in := time.Date(2026, 6, 1, 18, 0, 0, 0, jst)
	out := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&in))
	require.NotNil(t, out)
	assert.True(t, in.Equal(*out))
	assert.Equal(t, time.UTC, out.Location())
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	s := "gid://shopify/Return/1"
	assert.Equal(t, &s, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&s)))
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("find: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(assert.AnError))

	assert.True(t, pgconv.IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, pgconv.IsUniqueViolation(&pgconn.PgError{Code: "40001"}))
}
