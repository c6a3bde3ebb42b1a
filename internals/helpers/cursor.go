package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultCursorLimit = 10
	MaxCursorLimit     = 50
)

// CursorParams untuk keyset pagination (urut created_at DESC, id DESC).
type CursorParams struct {
	Cursor string // id item terakhir halaman sebelumnya, kosong = halaman pertama
	Limit  int
}

// ParseCursor membaca ?cursor= dan ?limit= dari query.
func ParseCursor(c *fiber.Ctx) CursorParams {
	limit := DefaultCursorLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > MaxCursorLimit {
		limit = MaxCursorLimit
	}
	return CursorParams{
		Cursor: strings.TrimSpace(c.Query("cursor")),
		Limit:  limit,
	}
}

// CursorPage memotong hasil query limit+1 menjadi satu halaman + next_cursor.
// idOf mengembalikan id item untuk dijadikan cursor halaman berikutnya.
func CursorPage[T any](items []T, limit int, idOf func(T) string) ([]T, *string) {
	if len(items) <= limit {
		return items, nil
	}
	trimmed := items[:limit]
	next := idOf(trimmed[len(trimmed)-1])
	return trimmed, &next
}
