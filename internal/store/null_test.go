package store

import (
	"testing"

	"github.com/delbyte/codeolympics/internal/models"
)

func TestNullStoreTreatsEverySubmissionAsFresh(t *testing.T) {
	st := NewNullStore()

	p, err := st.FindByEmail("a@x.com")
	if err != nil || p != nil {
		t.Fatalf("expected miss with no error, got %v, %v", p, err)
	}
	if err := st.Create(&models.Participant{Email: "a@x.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.IncrementPlayCount("a@x.com"); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := st.SaveAccepted("a@x.com", models.AcceptedCombo{}); err != nil {
		t.Fatalf("save accepted: %v", err)
	}

	// Still a miss: nothing is ever recorded.
	if p, _ := st.FindByEmail("a@x.com"); p != nil {
		t.Fatal("null store must not retain records")
	}
}

func TestUnconfiguredStoreFailsEverything(t *testing.T) {
	st := NewUnconfiguredStore()

	if _, err := st.FindByEmail("a@x.com"); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if err := st.Create(&models.Participant{}); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
