package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder(" ASC "))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("ascending; DROP TABLE invoices"))
}

func TestValidateSortField(t *testing.T) {
	t.Run("accepts whitelisted field", func(t *testing.T) {
		assert.Equal(t, "invoice_number", ValidateSortField("invoice_number", InvoiceSortFields, "created_at"))
	})

	t.Run("falls back to default for unknown field", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("password_hash", InvoiceSortFields, "created_at"))
	})

	t.Run("falls back to default for empty field", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("", BookingSortFields, "created_at"))
	})

	t.Run("rejects injection attempts", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("id; DELETE FROM users", UserSortFields, "created_at"))
	})
}
