package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQueries(t *testing.T) {
	dataSQL, dataArgs, countSQL, countArgs, err := buildListQueries(Query{AuthorID: 4, GenreID: 2, Q: "dune", Limit: 20, Offset: 20})
	require.NoError(t, err)

	assert.Contains(t, dataSQL, `LEFT JOIN "authors" AS "a"`)
	assert.Contains(t, dataSQL, "EXISTS (SELECT 1 FROM book_genres bg")
	assert.Contains(t, dataSQL, `ORDER BY "b"."title" ASC, "b"."id" ASC`)
	assert.Contains(t, dataArgs, "%dune%")
	assert.NotContains(t, countSQL, "ORDER BY")
	assert.Equal(t, []any{int64(4), int64(2), "%dune%", "%dune%"}, countArgs)
}
