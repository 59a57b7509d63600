package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

func TestValidStatusTransitionFromOpen(t *testing.T) {
	assert.True(t, ValidStatusTransition(models.StatusOpen, models.StatusInProgress))
	assert.True(t, ValidStatusTransition(models.StatusOpen, models.StatusResolved))
	assert.True(t, ValidStatusTransition(models.StatusOpen, models.StatusDismissed))
}

func TestValidStatusTransitionFromInProgress(t *testing.T) {
	assert.True(t, ValidStatusTransition(models.StatusInProgress, models.StatusResolved))
	assert.True(t, ValidStatusTransition(models.StatusInProgress, models.StatusDismissed))

	// No going back to open
	assert.False(t, ValidStatusTransition(models.StatusInProgress, models.StatusOpen))
}

func TestValidStatusTransitionTerminalStatesNeverReopen(t *testing.T) {
	terminal := []models.ComplaintStatus{models.StatusResolved, models.StatusDismissed}
	all := []models.ComplaintStatus{
		models.StatusOpen, models.StatusInProgress,
		models.StatusResolved, models.StatusDismissed,
	}

	for _, from := range terminal {
		for _, to := range all {
			assert.False(t, ValidStatusTransition(from, to),
				"transition %s -> %s should be rejected", from, to)
		}
	}
}

func TestValidStatusTransitionSelfTransitionRejected(t *testing.T) {
	for _, s := range []models.ComplaintStatus{
		models.StatusOpen, models.StatusInProgress,
		models.StatusResolved, models.StatusDismissed,
	} {
		assert.False(t, ValidStatusTransition(s, s))
	}
}

func TestClosingStatus(t *testing.T) {
	assert.True(t, closingStatus(models.StatusResolved))
	assert.True(t, closingStatus(models.StatusDismissed))
	assert.False(t, closingStatus(models.StatusOpen))
	assert.False(t, closingStatus(models.StatusInProgress))
}

func TestPlanStatusChangeFirstResolveStampsResolvedAt(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	complaint := &models.Complaint{Status: models.StatusInProgress}

	change, err := planStatusChange(complaint, models.StatusResolved, "Rerouted the bus", now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusResolved, change.Status)
	require.NotNil(t, change.ResolvedAt)
	assert.Equal(t, now, *change.ResolvedAt)
	require.NotNil(t, change.AdminResponse)
	assert.Equal(t, "Rerouted the bus", *change.AdminResponse)
}

func TestPlanStatusChangeKeepsEarlierResolvedAt(t *testing.T) {
	earlier := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	response := "Handled"
	complaint := &models.Complaint{
		Status:        models.StatusOpen,
		ResolvedAt:    &earlier,
		AdminResponse: &response,
	}

	change, err := planStatusChange(complaint, models.StatusResolved, "", time.Now())
	require.NoError(t, err)

	require.NotNil(t, change.ResolvedAt)
	assert.Equal(t, earlier, *change.ResolvedAt)
}

func TestPlanStatusChangeClosingWithoutResponseRejected(t *testing.T) {
	for _, to := range []models.ComplaintStatus{models.StatusResolved, models.StatusDismissed} {
		complaint := &models.Complaint{Status: models.StatusOpen}

		_, err := planStatusChange(complaint, to, "   ", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrAdminResponseRequired, "closing with %s", to)
	}
}

func TestPlanStatusChangePriorResponseSatisfiesGate(t *testing.T) {
	prior := "Already answered in person"
	complaint := &models.Complaint{
		Status:        models.StatusInProgress,
		AdminResponse: &prior,
	}

	change, err := planStatusChange(complaint, models.StatusDismissed, "", time.Now())
	require.NoError(t, err)

	require.NotNil(t, change.AdminResponse)
	assert.Equal(t, prior, *change.AdminResponse)
	assert.Nil(t, change.ResolvedAt)
}

func TestPlanStatusChangeInProgressNeedsNoResponse(t *testing.T) {
	complaint := &models.Complaint{Status: models.StatusOpen}

	change, err := planStatusChange(complaint, models.StatusInProgress, "", time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.StatusInProgress, change.Status)
	assert.Nil(t, change.AdminResponse)
	assert.Nil(t, change.ResolvedAt)
}

func TestPlanStatusChangeDismissDoesNotStampResolvedAt(t *testing.T) {
	complaint := &models.Complaint{Status: models.StatusOpen}

	change, err := planStatusChange(complaint, models.StatusDismissed, "Duplicate of an earlier report", time.Now())
	require.NoError(t, err)

	assert.Nil(t, change.ResolvedAt)
}

func TestPlanStatusChangeInvalidTransitionRejected(t *testing.T) {
	complaint := &models.Complaint{Status: models.StatusResolved}

	_, err := planStatusChange(complaint, models.StatusOpen, "reopening", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestPlanStatusChangeTrimsResponse(t *testing.T) {
	complaint := &models.Complaint{Status: models.StatusInProgress}

	change, err := planStatusChange(complaint, models.StatusResolved, "  Fixed the timetable  ", time.Now())
	require.NoError(t, err)

	require.NotNil(t, change.AdminResponse)
	assert.Equal(t, "Fixed the timetable", *change.AdminResponse)
}

func TestComplaintLive(t *testing.T) {
	assert.True(t, (&models.Complaint{Status: models.StatusOpen}).Live())
	assert.True(t, (&models.Complaint{Status: models.StatusInProgress}).Live())
	assert.False(t, (&models.Complaint{Status: models.StatusResolved}).Live())
	assert.False(t, (&models.Complaint{Status: models.StatusDismissed}).Live())
}
