package store

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/xtding233/sheepshead-backend/internal/session"
	"github.com/xtding233/sheepshead-backend/internal/stake"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := stake.NewStake(10, 50, 10)
	if err != nil {
		t.Fatal(err)
	}
	sess, err := session.New(s, []string{"anna", "bert", "carl", "dora"})
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestSessionStore(t *testing.T) {
	st, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	a, b, c := newSession(t), newSession(t), newSession(t)
	st.Add(a)
	st.Add(b)

	got, err := st.Get(a.ID)
	if err != nil || got != a {
		t.Fatalf("Get(a) = %v, %v", got, err)
	}

	// a was used last, so b is evicted
	st.Add(c)
	if st.Len() != 2 {
		t.Errorf("Len() = %d", st.Len())
	}
	if _, err := st.Get(b.ID); errors.Cause(err) != ErrNotFound {
		t.Errorf("expected b to be evicted, got %v", err)
	}
	if _, err := st.Get(a.ID); err != nil {
		t.Errorf("a should still be stored: %v", err)
	}

	st.Delete(a.ID)
	st.Delete("missing")
	if _, err := st.Get(a.ID); errors.Cause(err) != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("size 0 must fail")
	}
}
