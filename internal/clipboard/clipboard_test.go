package clipboard

import (
	"errors"
	"testing"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get(); ok {
		t.Error("new clipboard should be empty")
	}
	if err := m.Set("hello"); err != nil {
		t.Fatal(err)
	}
	if got, ok := m.Get(); !ok || got != "hello" {
		t.Errorf("expected hello, got %q %v", got, ok)
	}

	// Empty text is still a value.
	_ = m.Set("")
	if got, ok := m.Get(); !ok || got != "" {
		t.Errorf("expected empty value, got %q %v", got, ok)
	}
}

func TestSystemRoundTrip(t *testing.T) {
	var stored string
	s := &System{
		read:  func() (string, error) { return stored, nil },
		write: func(text string) error { stored = text; return nil },
	}

	if err := s.Set("fn main"); err != nil {
		t.Fatal(err)
	}
	if got, ok := s.Get(); !ok || got != "fn main" {
		t.Errorf("expected fn main, got %q %v", got, ok)
	}
}

func TestSystemFallback(t *testing.T) {
	failure := errors.New("no display")
	s := &System{
		read:  func() (string, error) { return "", failure },
		write: func(string) error { return failure },
	}

	if _, ok := s.Get(); ok {
		t.Error("expected empty clipboard")
	}

	err := s.Set("hello")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if got, ok := s.Get(); !ok || got != "hello" {
		t.Errorf("expected local fallback hello, got %q %v", got, ok)
	}
}
