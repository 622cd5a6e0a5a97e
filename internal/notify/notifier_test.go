package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_DefaultsAndExpiry(t *testing.T) {
	n := New()
	defer n.Close()

	id := n.Notify(Notification{Title: "hello", Duration: 30 * time.Millisecond})
	require.NotEmpty(t, id)

	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, VariantDefault, active[0].Variant)

	assert.Eventually(t, func() bool { return len(n.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestNotify_DefaultDuration(t *testing.T) {
	n := New()
	defer n.Close()

	n.Info("title", "")
	assert.Equal(t, DefaultDuration, n.Active()[0].Duration)
}

func TestNotify_IndependentExpiry(t *testing.T) {
	n := New()
	defer n.Close()

	short := n.Notify(Notification{Title: "short", Duration: 20 * time.Millisecond})
	long := n.Notify(Notification{Title: "long", Duration: time.Minute})

	assert.Eventually(t, func() bool {
		active := n.Active()
		return len(active) == 1 && active[0].ID == long
	}, time.Second, 5*time.Millisecond)
	assert.False(t, n.Dismiss(short), "expired notification cannot be dismissed")
}

func TestDismiss(t *testing.T) {
	n := New()
	defer n.Close()

	first := n.Error("Error adding recipe", "Please try again later")
	second := n.Info("Added to bookmarks", "")

	assert.True(t, n.Dismiss(first))
	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second, active[0].ID)
	assert.False(t, n.Dismiss("unknown"))
}

func TestUpdateCallback(t *testing.T) {
	n := New()
	defer n.Close()

	var mu sync.Mutex
	var sizes []int
	n.SetUpdateCallback(func(items []Notification) {
		mu.Lock()
		sizes = append(sizes, len(items))
		mu.Unlock()
	})

	id := n.Error("Validation Error", "Recipe name is required")
	n.Dismiss(id)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 0}, sizes)
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "default", VariantDefault.String())
	assert.Equal(t, "destructive", VariantDestructive.String())
}
