package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetSet(t *testing.T) {
	c := New[string](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key", "value")
	got, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestExpiry(t *testing.T) {
	c := New[int](10 * time.Millisecond)

	c.Set("key", 42)
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestPurgeExpired(t *testing.T) {
	c := New[int](10 * time.Millisecond)

	c.Set("a", 1)
	c.Set("b", 2)
	time.Sleep(25 * time.Millisecond)
	c.Set("c", 3)

	c.PurgeExpired()
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestEmptyKeyIgnored(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("", "value")
	_, ok := c.Get("")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestJanitor(t *testing.T) {
	c := New[int](5 * time.Millisecond)
	stop := c.StartJanitor(10 * time.Millisecond)
	defer stop()

	c.Set("key", 1)
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, 0, c.Len())
}
