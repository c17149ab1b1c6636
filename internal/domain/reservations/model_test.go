package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusInquiry.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusWaitlist.IsActive())
	assert.False(t, StatusNoShow.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusClosed.IsActive())
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "secondary", StatusCancelled.Badge())
	assert.Equal(t, "secondary", StatusNoShow.Badge())
	assert.Equal(t, "neutral", StatusClosed.Badge())
	assert.Equal(t, "primary", StatusInquiry.Badge())
	assert.Equal(t, "primary", StatusConfirmed.Badge())
	assert.Equal(t, "primary", StatusWaitlist.Badge())
}

func TestStatusCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
		StatusInquiry:   {StatusConfirmed, StatusWaitlist, StatusCancelled},
		StatusConfirmed: {StatusNoShow, StatusCancelled, StatusClosed},
		StatusWaitlist:  {StatusConfirmed, StatusCancelled},
	}
	all := []Status{StatusInquiry, StatusConfirmed, StatusWaitlist, StatusNoShow, StatusCancelled, StatusClosed}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equalf(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}
