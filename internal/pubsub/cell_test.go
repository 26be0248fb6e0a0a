package pubsub

import (
	"sync"
	"testing"
)

func TestCellGetSet(t *testing.T) {
	c := NewCell(1)
	if got := c.Get(); got != 1 {
		t.Fatalf("Get = %d, want 1", got)
	}
	c.Set(2)
	if got := c.Get(); got != 2 {
		t.Fatalf("Get = %d, want 2", got)
	}
}

func TestCellNotifiesSubscribers(t *testing.T) {
	c := NewCell("initial")

	var got []string
	cancel := c.Subscribe(func(v string) { got = append(got, v) })

	c.Set("a")
	c.Set("b")
	cancel()
	c.Set("c")

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("notifications = %v, want [a b]", got)
	}
}

func TestCellValueVisibleDuringNotify(t *testing.T) {
	c := NewCell(0)
	c.Subscribe(func(v int) {
		if current := c.Get(); current != v {
			t.Fatalf("Get during notify = %d, notified value = %d", current, v)
		}
	})
	c.Set(42)
}

func TestCellConcurrentReaders(t *testing.T) {
	c := NewCell(0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Get()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		c.Set(i)
	}
	wg.Wait()
}
