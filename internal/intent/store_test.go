package intent

import "testing"

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Get("missing"); ok {
		t.Errorf("unknown session must be absent")
	}

	s.Set("a", Greeting)
	s.Set("a", DeliveryTime)
	if got, ok := s.Get("a"); !ok || got != DeliveryTime {
		t.Errorf("expected last write to win, got %s ok=%v", got, ok)
	}
}

func TestLRUStore(t *testing.T) {
	s, err := NewLRUStore(2)
	if err != nil {
		t.Fatalf("NewLRUStore: %v", err)
	}

	s.Set("a", Greeting)
	s.Set("b", ReturnsPolicy)
	s.Get("a")
	s.Set("c", TrackingStatus)

	if _, ok := s.Get("b"); ok {
		t.Errorf("least recently used session should have been evicted")
	}
	if got, ok := s.Get("a"); !ok || got != Greeting {
		t.Errorf("expected a=greeting, got %s ok=%v", got, ok)
	}
}

func TestNewSessionStore(t *testing.T) {
	if s, err := NewSessionStore(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("size 0 should give a MemoryStore, got %T", s)
	}

	if s, err := NewSessionStore(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if _, ok := s.(*LRUStore); !ok {
		t.Errorf("positive size should give an LRUStore, got %T", s)
	}

	if _, err := NewSessionStore(-1); err == nil {
		t.Errorf("expected error for negative size")
	}
}
