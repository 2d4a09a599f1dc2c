package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sales-invoice", Slugify("Sales Invoice"))
	assert.Equal(t, "item", Slugify("Item"))
	assert.Equal(t, "al-noor-trading", Slugify("Al  Noor -- Trading!"))
}

func TestRecordURL(t *testing.T) {
	assert.Equal(t,
		"https://erp.example.com/app/sales-invoice/ACC-SINV-2026-00001",
		RecordURL("https://erp.example.com/", "Sales Invoice", "ACC-SINV-2026-00001"))
}
