package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to Status
	}{
		{StatusPaymentPending, StatusConfirmed},
		{StatusPaymentPending, StatusCancelled},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCancelled},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.NoError(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	rejected := []struct {
		from, to Status
	}{
		{StatusPaymentPending, StatusInProgress},
		{StatusPaymentPending, StatusCompleted},
		{StatusConfirmed, StatusCompleted},
		{StatusCompleted, StatusInProgress},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
	}
	for _, tc := range rejected {
		err := CanTransition(tc.from, tc.to)
		require.Error(t, err, "%s -> %s", tc.from, tc.to)
		code, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, "invalid_status_transition", code)
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	err := CanTransition(StatusConfirmed, Status("shipped"))
	require.Error(t, err)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "invalid_status", code)
}

func TestApplySetsTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusPaymentPending)}
	require.NoError(t, Apply(b, StatusConfirmed, now, false))
	assert.Equal(t, "confirmed", b.Status)
	require.NotNil(t, b.ConfirmedAt)
	assert.Equal(t, now, *b.ConfirmedAt)
	assert.Nil(t, b.CancelledAt)

	require.NoError(t, Apply(b, StatusInProgress, now, false))
	require.NotNil(t, b.StartedAt)

	require.NoError(t, Apply(b, StatusCompleted, now, false))
	require.NotNil(t, b.CompletedAt)
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusPaymentPending)}
	err := Apply(b, StatusCompleted, now, false)
	require.Error(t, err)
	assert.Equal(t, "payment_pending", b.Status, "booking must be untouched")
	assert.Nil(t, b.CompletedAt)
}

func TestApplyForce(t *testing.T) {
	now := time.Now()

	// force bypasses the table
	b := &models.Booking{Status: string(StatusCompleted)}
	require.NoError(t, Apply(b, StatusInProgress, now, true))
	assert.Equal(t, "in_progress", b.Status)

	// but never accepts a made-up status
	err := Apply(b, Status("paused"), now, true)
	require.Error(t, err)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "invalid_status", code)
	assert.Equal(t, "in_progress", b.Status)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPaymentPending, InitialStatus())
}
