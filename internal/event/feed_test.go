package event

import "testing"

func TestFeedOrder(t *testing.T) {
	var f Feed[int]
	var got []string

	f.Subscribe(func(v int) { got = append(got, "a") })
	f.Subscribe(func(v int) { got = append(got, "b") })
	f.Emit(1)

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Expected [a b], got %v", got)
	}
}

func TestFeedUnsubscribe(t *testing.T) {
	var f Feed[string]
	count := 0

	id := f.Subscribe(func(string) { count++ })
	f.Emit("x")
	f.Unsubscribe(id)
	f.Emit("y")
	f.Unsubscribe(id) // unknown ids are ignored

	if count != 1 {
		t.Errorf("Expected 1 delivery, got %d", count)
	}
	if f.Len() != 0 {
		t.Errorf("Expected no handlers, got %d", f.Len())
	}
}

func TestFeedBlock(t *testing.T) {
	var f Feed[struct{}]
	count := 0
	f.Subscribe(func(struct{}) { count++ })

	f.Block(true)
	f.Emit(struct{}{})
	if !f.Blocked() {
		t.Error("Expected feed to be blocked")
	}
	f.Block(false)
	f.Emit(struct{}{})

	if count != 1 {
		t.Errorf("Expected blocked emit to be dropped, got %d deliveries", count)
	}
}

func TestFeedSubscribeDuringEmit(t *testing.T) {
	var f Feed[int]
	late := 0

	f.Subscribe(func(int) {
		f.Subscribe(func(int) { late++ })
	})

	f.Emit(1)
	if late != 0 {
		t.Fatalf("Handler added during delivery must not run in the same Emit, ran %d times", late)
	}

	f.Emit(2)
	if late != 1 {
		t.Errorf("Expected late handler to run once, got %d", late)
	}
}

func TestFeedNilHandler(t *testing.T) {
	var f Feed[int]
	if id := f.Subscribe(nil); id != 0 {
		t.Errorf("Expected zero subscription for nil handler, got %d", id)
	}
	f.Emit(1)
}
