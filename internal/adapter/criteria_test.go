// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifiedSinceCriteria(t *testing.T) {
	since := time.Date(2026, 1, 9, 7, 5, 3, 0, time.UTC)
	assert.Equal(t, "Modified_Time >= '9-Jan-2026 07:05:03'", ModifiedSinceCriteria("Modified_Time", since))
}

func TestParseModifiedTime(t *testing.T) {
	want := time.Date(2026, 10, 5, 14, 3, 9, 0, time.UTC)

	tests := []struct {
		name  string
		value string
	}{
		{name: "zoho padded day", value: "05-Oct-2026 14:03:09"},
		{name: "zoho short day", value: "5-Oct-2026 14:03:09"},
		{name: "iso space", value: "2026-10-05 14:03:09"},
		{name: "rfc3339", value: "2026-10-05T14:03:09Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModifiedTime(tt.value, time.UTC)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseModifiedTime_Invalid(t *testing.T) {
	for _, value := range []string{"", "yesterday", "2026-13-45"} {
		_, err := ParseModifiedTime(value, time.UTC)
		assert.Error(t, err, value)
	}
}
