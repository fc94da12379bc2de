package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Expiry(t *testing.T) {
	n := NewNotifier(0)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first := n.Push(KindSuccess, "Saved successfully!", start)
	second := n.Push(KindError, "Save failed", start.Add(2*time.Second))

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, start.Add(NotificationTTL), first.Expires)

	active := n.Active(start.Add(time.Second))
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)

	active = n.Active(start.Add(NotificationTTL))
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	assert.Empty(t, n.Active(start.Add(time.Minute)))
}

func TestNotifier_Dismiss(t *testing.T) {
	n := NewNotifier(time.Minute)
	now := time.Now()

	a := n.Push(KindSuccess, "a", now)
	b := n.Push(KindSuccess, "b", now)

	assert.True(t, n.Dismiss(a.ID))
	assert.False(t, n.Dismiss(a.ID))

	active := n.Active(now)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)
}
