package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKeyError(errors.New(
		`ERROR: duplicate key value violates unique constraint "idx_manajemen_sections_manajemen_section_anchor" (SQLSTATE 23505)`)))
	assert.True(t, isDuplicateKeyError(errors.New("UNIQUE constraint failed")))
	assert.False(t, isDuplicateKeyError(errors.New("connection refused")))
	assert.False(t, isDuplicateKeyError(gorm.ErrRecordNotFound))
}
