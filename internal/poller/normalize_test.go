// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderKey(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "Item Name", want: "item name"},
		{header: "  Price (USD) ", want: "price"},
		{header: "Width [in]", want: "width"},
		{header: "Rental\n  Rate (per month)", want: "rental rate"},
		{header: "ID", want: "id"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, headerKey(tt.header))
		})
	}
}

func TestNormalizeRows(t *testing.T) {
	headers := NewHeaderMap(map[string]string{
		"ID":         "ID",
		"Item Name":  "Item_Name",
		"Price":      "Price",
		"Photo":      "Image",
		"Ignored":    " ",
		"Modified":   "Modified_Time",
		"Extra Note": "Notes",
	})

	rows := []scrapedRow{
		{
			Values: map[string]string{"ID": "1001", "Item Name": " Chair ", "Price (USD)": "10", "Internal": "x"},
			Images: map[string]string{"Photo": "https://proxy.example.com/img?url=https%3A%2F%2Fcreator.zoho.com%2Fimage%2Fa.jpg"},
		},
		{
			Values: map[string]string{"Item Name": "No id"},
		},
		{
			Values: map[string]string{"ID": "", "Item Name": "Blank id"},
		},
		{
			Values: map[string]string{"ID": "1002"},
			Images: map[string]string{"Photo": ""},
		},
	}

	records, discarded := normalizeRows(rows, headers, "ID")

	require.Len(t, records, 2)
	assert.Equal(t, 2, discarded)

	chair := records[0]
	assert.Equal(t, "1001", chair.Value("ID"))
	assert.Equal(t, "Chair", chair.Value("Item_Name"))
	assert.Equal(t, "10", chair.Value("Price"))
	assert.Equal(t, "https://creator.zoho.com/image/a.jpg", chair.Value("Image"))
	assert.NotContains(t, chair, "Internal")

	_, hasImage := records[1]["Image"]
	assert.False(t, hasImage)
}

func TestDecodeRows(t *testing.T) {
	rows, err := decodeRows([]byte(`[{"values":{"ID":"1"},"images":{"Photo":"a.jpg"}}]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Values["ID"])
	assert.Equal(t, "a.jpg", rows[0].Images["Photo"])

	rows, err = decodeRows(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = decodeRows([]byte(`{"not":"an array"}`))
	require.ErrorIs(t, err, ErrExtraction)
}
