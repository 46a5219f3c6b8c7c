package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookingStatusTransitions(t *testing.T) {
	all := []BookingStatus{BookingConfirmed, BookingCancelled, BookingStatus("pending"), BookingStatus("")}
	for _, from := range all {
		for _, to := range all {
			want := from == BookingConfirmed && to == BookingCancelled
			require.Equal(t, want, from.CanTransitionTo(to), "%q -> %q", from, to)
		}
	}
}
