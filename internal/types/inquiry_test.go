package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from InquiryStatus
		to   InquiryStatus
		want bool
	}{
		{"pending to contacted", InquiryPending, InquiryContacted, true},
		{"pending to rejected", InquiryPending, InquiryRejected, true},
		{"pending to cancelled", InquiryPending, InquiryCancelled, true},
		{"pending skips to scheduled", InquiryPending, InquiryScheduled, false},
		{"pending skips to visited", InquiryPending, InquiryVisited, false},
		{"contacted to scheduled", InquiryContacted, InquiryScheduled, true},
		{"scheduled to visited", InquiryScheduled, InquiryVisited, true},
		{"visited to rented", InquiryVisited, InquiryRented, true},
		{"rented is terminal", InquiryRented, InquiryContacted, false},
		{"rejected is terminal", InquiryRejected, InquiryPending, false},
		{"cancelled is terminal", InquiryCancelled, InquiryPending, false},
		{"no-op transition", InquiryContacted, InquiryContacted, true},
		{"no going back", InquiryScheduled, InquiryPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(InquiryRented))
	assert.True(t, Terminal(InquiryRejected))
	assert.True(t, Terminal(InquiryCancelled))
	assert.False(t, Terminal(InquiryPending))
	assert.False(t, Terminal(InquiryScheduled))
}

func TestValidInquiryStatus(t *testing.T) {
	assert.True(t, ValidInquiryStatus(InquiryPending))
	assert.False(t, ValidInquiryStatus(InquiryStatus("HAUNTED")))
	assert.False(t, ValidInquiryStatus(InquiryStatus("")))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleStudent))
	assert.True(t, ValidRole(RoleLandlord))
	assert.False(t, ValidRole("admin"))
}
