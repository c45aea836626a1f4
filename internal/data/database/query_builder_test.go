package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery_Basic(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithColumns("id", "title", "status"),
		WithOrderBy("created_at", "DESC"),
		WithLimit(10),
		WithOffset(20),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t, `SELECT "id", "title", "status" FROM "jobs" ORDER BY "created_at" DESC LIMIT $1 OFFSET $2`, query)
	assert.Equal(t, []any{10, 20}, args)
}

func TestBuildListQuery_Conditions(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithColumns("id"),
		WithCondition(WhereCond("status", Equal, "ACTIVE")),
		WithCondition(WhereCond("location", ILike, "%doha%")),
		WithCondition(WhereCond("salary_min", GreaterThanOrEqual, 9000)),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT "id" FROM "jobs" WHERE "status" = $1 AND "location" ILIKE $2 AND "salary_min" >= $3`,
		query)
	assert.Equal(t, []any{"ACTIVE", "%doha%", 9000}, args)
}

func TestBuildListQuery_InCondition(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("users",
		WithCondition(WhereCond("role", In, []string{"EMPLOYER", "ADMIN"})),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t, `SELECT * FROM "users" WHERE "role" IN ($1, $2)`, query)
	assert.Equal(t, []any{"EMPLOYER", "ADMIN"}, args)
}

func TestBuildListQuery_EmptyInConditionSkipped(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("users",
		WithCondition(WhereCond("role", In, []string{})),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t, `SELECT * FROM "users"`, query)
	assert.Empty(t, args)
}

func TestBuildListQuery_RawCondition(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("status", Equal, "ACTIVE")),
		WithCondition(WhereRawCond("(title ILIKE $1 OR description ILIKE $1 OR company ILIKE $1)", "%go%")),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT * FROM "jobs" WHERE "status" = $1 AND (title ILIKE $2 OR description ILIKE $2 OR company ILIKE $2)`,
		query)
	assert.Equal(t, []any{"ACTIVE", "%go%"}, args)
}

func TestBuildListQuery_RawConditionMultipleParams(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithCondition(WhereCond("employer_id", Equal, "emp-1")),
		WithCondition(WhereRawCond("(salary_min >= $1 AND salary_max <= $2)", 5000, 20000)),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT * FROM "jobs" WHERE "employer_id" = $1 AND (salary_min >= $2 AND salary_max <= $3)`,
		query)
	assert.Equal(t, []any{"emp-1", 5000, 20000}, args)
}

func TestBuildListQuery_CountOnly(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithCountOnly(),
		WithCondition(WhereCond("status", Equal, "ACTIVE")),
		WithOrderBy("created_at", "DESC"),
		WithLimit(10),
	)

	query, args := BuildListQuery(opts)

	// Count queries ignore order and pagination
	assert.Equal(t, `SELECT COUNT(*) FROM "jobs" WHERE "status" = $1`, query)
	assert.Equal(t, []any{"ACTIVE"}, args)
}

func TestBuildListQuery_OrderDirValidated(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithOrderBy("created_at", "desc; DROP TABLE jobs"),
	)

	query, _ := BuildListQuery(opts)

	assert.Equal(t, `SELECT * FROM "jobs" ORDER BY "created_at"`, query)
}

func TestBuildListQuery_QualifiedIdentifiers(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("jobs",
		WithColumns("jobs.id", "jobs.title"),
		WithCondition(WhereCond("jobs.status", Equal, "ACTIVE")),
	)

	query, _ := BuildListQuery(opts)

	assert.Equal(t, `SELECT "jobs"."id", "jobs"."title" FROM "jobs" WHERE "jobs"."status" = $1`, query)
}

func TestBuildListQuery_NilOptions(t *testing.T) {
	t.Parallel()

	query, args := BuildListQuery(nil)
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestWhereCond_PanicsOnCustom(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		WhereCond("field", Custom, "value")
	})
}
