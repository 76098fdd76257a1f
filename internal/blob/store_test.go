package blob

import (
	"context"
	"errors"
	"testing"

	"github.com/danielokoye/invoicescan/internal/common"
)

func TestFSStoreRoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	ctx := context.Background()

	key := "uploads/7f3a/invoice.pdf"
	want := []byte("%PDF-1.4 payload")
	if err := s.Put(ctx, key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Get = %q, want %q", got, want)
	}
}

func TestFSStoreMissingKey(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	_, err = s.Get(context.Background(), "uploads/nope/missing.pdf")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestFSStoreRejectsEscapingKeys(t *testing.T) {
	s, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{
		"../outside.pdf",
		"uploads/../../etc/passwd",
		"/etc/passwd",
		".",
		"",
	} {
		if err := s.Put(ctx, key, []byte("x")); !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("Put(%q) = %v, want ErrInvalidInput", key, err)
		}
		if _, err := s.Get(ctx, key); !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("Get(%q) = %v, want ErrInvalidInput", key, err)
		}
	}
}
