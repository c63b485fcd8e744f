package pipeline

import (
	"sync"
	"testing"
)

func TestPipeline_DropOnFull(t *testing.T) {
	p := New[int](2)

	if !p.TryPush(1) || !p.TryPush(2) {
		t.Fatal("pushes into empty pipeline failed")
	}
	if p.TryPush(3) {
		t.Error("third push into capacity-2 pipeline should drop")
	}

	// The two oldest accepted items come out in order; the dropped
	// item never appears
	first, ok := p.TryPop()
	if !ok || first != 1 {
		t.Errorf("first pop = %v, %v; want 1, true", first, ok)
	}
	second, ok := p.TryPop()
	if !ok || second != 2 {
		t.Errorf("second pop = %v, %v; want 2, true", second, ok)
	}
	if _, ok := p.TryPop(); ok {
		t.Error("pop from drained pipeline returned an item")
	}
}

func TestPipeline_EmptyPopReturnsImmediately(t *testing.T) {
	p := New[string](2)
	if v, ok := p.TryPop(); ok {
		t.Errorf("pop from empty pipeline returned %q", v)
	}
}

func TestPipeline_Stats(t *testing.T) {
	p := New[int](2)
	p.TryPush(1)
	p.TryPush(2)
	p.TryPush(3)

	pushed, dropped := p.Stats()
	if pushed != 2 {
		t.Errorf("pushed = %d, want 2", pushed)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
}

func TestPipeline_MinimumCapacity(t *testing.T) {
	p := New[int](0)
	if !p.TryPush(1) {
		t.Error("capacity clamps to 1, first push should succeed")
	}
	if p.TryPush(2) {
		t.Error("second push into capacity-1 pipeline should drop")
	}
}

func TestPipeline_ProducerNeverBlocks(t *testing.T) {
	p := New[int](2)

	var wg sync.WaitGroup
	wg.Add(2)

	// Producer pushes far more than the consumer drains; every push
	// must return promptly or the test times out
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			p.TryPush(i)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			p.TryPop()
		}
	}()

	wg.Wait()

	pushed, dropped := p.Stats()
	if pushed+dropped != 10000 {
		t.Errorf("pushed %d + dropped %d != 10000", pushed, dropped)
	}
}
