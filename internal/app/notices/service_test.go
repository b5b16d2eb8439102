package notices

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	memclock "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/clock"
	memnotificationrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/notificationrepo"
	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

func newService(t *testing.T) (*Service, *memclock.ManualClock) {
	t.Helper()
	clk := memclock.NewManualClock(time.Unix(1_700_000_000, 0).UTC())
	return NewService(memnotificationrepo.NewRepo(), clk), clk
}

func TestCreateNotificationDefaults(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)

	n, err := svc.CreateNotification(context.Background(), CreateNotificationInput{
		Title:   "  Holiday hours ",
		Message: " Closed on Monday. ",
	})
	require.NoError(t, err)
	require.Equal(t, "Holiday hours", n.Title)
	require.Equal(t, "Closed on Monday.", n.Message)
	require.Equal(t, "info", n.Type)
	require.Equal(t, "all", n.TargetAudience)
	require.False(t, n.ReadFlag)
	require.Equal(t, clk.Now(), n.CreatedAt)
}

func TestCreateNotificationValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	ae := (*apperr.Error)(nil)
	_, err := svc.CreateNotification(ctx, CreateNotificationInput{Title: "", Message: "x"})
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)
	require.Equal(t, "VALIDATION_ERROR", ae.Code)

	_, err = svc.CreateNotification(ctx, CreateNotificationInput{Title: "x", Message: "   "})
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)
}

func TestListNotificationsAudience(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)
	ctx := context.Background()

	mk := func(title, audience string) {
		t.Helper()
		_, err := svc.CreateNotification(ctx, CreateNotificationInput{Title: title, Message: "m", TargetAudience: audience})
		require.NoError(t, err)
		clk.Advance(time.Minute)
	}
	mk("For everyone", "all")
	mk("For members", "members")
	mk("For staff", "staff")

	titles := func(ns []domain.Notification) []string {
		out := make([]string, 0, len(ns))
		for _, n := range ns {
			out = append(out, n.Title)
		}
		return out
	}

	all, err := svc.ListNotifications(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	require.Equal(t, []string{"For staff", "For members", "For everyone"}, titles(all))

	// "members" also sees broadcasts addressed to "all".
	got, err := svc.ListNotifications(ctx, "Members")
	require.NoError(t, err)
	require.Equal(t, []string{"For members", "For everyone"}, titles(got))

	got, err = svc.ListNotifications(ctx, "staff")
	require.NoError(t, err)
	require.Equal(t, []string{"For staff"}, titles(got))
}

func TestMarkReadIdempotent(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	n, err := svc.CreateNotification(ctx, CreateNotificationInput{Title: "Renewal due", Message: "m"})
	require.NoError(t, err)
	require.False(t, n.ReadFlag)

	got, err := svc.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, got.ReadFlag)

	again, err := svc.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, again.ReadFlag)
}

func TestMarkReadUnknownID(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.MarkRead(context.Background(), domain.NotificationID("nope"))
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.Status)
	require.Equal(t, "NOTIFICATION_NOT_FOUND", ae.Code)
}
