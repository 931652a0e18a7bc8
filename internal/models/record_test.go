package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso date", "2024-01-15", "January 15, 2024"},
		{"end of month", "2025-07-30", "July 30, 2025"},
		{"not a date", "soon", "soon"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestRecordDisplay(t *testing.T) {
	r := Record{
		ID:            "BFT11385",
		SubjectName:   "Kaushal",
		Organization:  "Bluestock Fintech",
		Role:          "Software Development Engineer",
		IssueDate:     "2024-01-15",
		DurationLabel: "1 Jan 2024 - 15 Jan 2024",
		Status:        StatusVerified,
		Remark:        "verified",
	}

	d := r.Display()
	assert.Equal(t, "Kaushal", d.SubjectName)
	assert.Equal(t, "2024-01-15", d.IssueDate)
	assert.Equal(t, "January 15, 2024", d.IssueDateFormatted)
	assert.Equal(t, "Software Development Engineer", d.Role)
	assert.Equal(t, "1 Jan 2024 - 15 Jan 2024", d.DurationLabel)
	assert.Equal(t, "verified", d.Remark)
}
