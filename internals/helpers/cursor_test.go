package helper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "id-" + strconv.Itoa(i)
	}
	return out
}

func TestCursorPage_FullPageHasNextCursor(t *testing.T) {
	// query limit+1, dapat 11 item untuk limit 10
	items := ids(11)
	page, next := CursorPage(items, 10, func(s string) string { return s })

	require.Len(t, page, 10)
	require.NotNil(t, next)
	assert.Equal(t, "id-9", *next)
}

func TestCursorPage_LastPageHasNoCursor(t *testing.T) {
	items := ids(7)
	page, next := CursorPage(items, 10, func(s string) string { return s })

	assert.Len(t, page, 7)
	assert.Nil(t, next)
}

func TestCursorPage_EmptyResult(t *testing.T) {
	page, next := CursorPage(nil, 10, func(s string) string { return s })
	assert.Empty(t, page)
	assert.Nil(t, next)
}
