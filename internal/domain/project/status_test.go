package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetStatusCompletedForcesProgressAndStampsDate(t *testing.T) {
	now := time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC)
	p := Project{Status: StatusInProgress, Progress: 60}

	p.SetStatus(StatusCompleted, now)

	require.Equal(t, StatusCompleted, p.Status)
	require.Equal(t, 100, p.Progress)
	require.Equal(t, "2025-02-03", p.CompletedDate)
}

func TestSetStatusInProgressBumpsZeroProgressOnly(t *testing.T) {
	now := time.Now().UTC()

	fresh := Project{Status: StatusNotStarted, Progress: 0}
	fresh.SetStatus(StatusInProgress, now)
	require.Equal(t, 25, fresh.Progress)

	partway := Project{Status: StatusOnHold, Progress: 40}
	partway.SetStatus(StatusInProgress, now)
	require.Equal(t, 40, partway.Progress)
}

func TestSetStatusInReviewRaisesProgressToEighty(t *testing.T) {
	now := time.Now().UTC()

	low := Project{Status: StatusInProgress, Progress: 50}
	low.SetStatus(StatusInReview, now)
	require.Equal(t, 80, low.Progress)

	high := Project{Status: StatusInProgress, Progress: 95}
	high.SetStatus(StatusInReview, now)
	require.Equal(t, 95, high.Progress)
}

func TestSetStatusOtherTransitionsLeaveProgressAlone(t *testing.T) {
	now := time.Now().UTC()

	for _, status := range []Status{StatusNotStarted, StatusRevision, StatusOnHold, StatusCancelled} {
		p := Project{Status: StatusInProgress, Progress: 55}
		p.SetStatus(status, now)
		require.Equal(t, 55, p.Progress, "status %s", status)
		require.Equal(t, status, p.Status)
	}
}

func TestStatusRankOrdersWorkflow(t *testing.T) {
	ordered := []Status{
		StatusNotStarted,
		StatusInProgress,
		StatusInReview,
		StatusRevision,
		StatusCompleted,
		StatusOnHold,
		StatusCancelled,
	}
	for i := 1; i < len(ordered); i++ {
		require.Less(t, ordered[i-1].Rank(), ordered[i].Rank())
	}

	require.Greater(t, Status("bogus").Rank(), StatusCancelled.Rank())
	require.False(t, Status("bogus").Valid())
}

func TestPriorityRankOrdersUrgency(t *testing.T) {
	require.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	require.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
	require.Less(t, PriorityHigh.Rank(), PriorityUrgent.Rank())
	require.Greater(t, Priority("bogus").Rank(), PriorityUrgent.Rank())
}

func TestEstimatedProgressFollowsStatus(t *testing.T) {
	cases := map[Status]int{
		StatusNotStarted: 0,
		StatusInProgress: 50,
		StatusInReview:   80,
		StatusRevision:   65,
		StatusCompleted:  100,
		StatusCancelled:  0,
	}
	for status, want := range cases {
		p := Project{Status: status, Progress: 33}
		require.Equal(t, want, p.EstimatedProgress(), "status %s", status)
	}

	onHold := Project{Status: StatusOnHold, Progress: 33}
	require.Equal(t, 33, onHold.EstimatedProgress())
}
