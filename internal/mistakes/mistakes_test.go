package mistakes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ascentlearn/ascent/internal/store"
)

// fakeMistakeRepo mirrors the dedup behavior of the real repository.
type fakeMistakeRepo struct {
	rows []store.Mistake
}

func (f *fakeMistakeRepo) Insert(_ context.Context, m *store.Mistake) error {
	for _, existing := range f.rows {
		if existing.SessionID == m.SessionID && existing.Question == m.Question && existing.UserAnswer == m.UserAnswer {
			return nil
		}
	}
	f.rows = append(f.rows, *m)
	return nil
}

func (f *fakeMistakeRepo) BySession(_ context.Context, sessionID string) ([]store.Mistake, error) {
	var out []store.Mistake
	for _, m := range f.rows {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMistakeRepo) All(_ context.Context) ([]store.Mistake, error) {
	return f.rows, nil
}

func (f *fakeMistakeRepo) UpdateComment(_ context.Context, sessionID, question, comment string) error {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].SessionID == sessionID && f.rows[i].Question == question {
			f.rows[i].Comment = comment
			return nil
		}
	}
	return store.ErrNotFound
}

func TestRecordDeduplicates(t *testing.T) {
	repo := &fakeMistakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	q := store.Question{Question: "2+2?", CorrectAnswer: "4", Explanation: "Count."}
	require.NoError(t, svc.Record(ctx, "sess-1", 1, q, "5"))
	require.NoError(t, svc.Record(ctx, "sess-1", 1, q, " 5 "), "whitespace-only differences are the same answer")
	require.NoError(t, svc.Record(ctx, "sess-1", 1, q, "3"))

	got, err := svc.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "4", got[0].CorrectAnswer)
}

func TestListAllSessions(t *testing.T) {
	repo := &fakeMistakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	q := store.Question{Question: "2+2?", CorrectAnswer: "4"}
	require.NoError(t, svc.Record(ctx, "sess-1", 1, q, "5"))
	require.NoError(t, svc.Record(ctx, "sess-2", 1, q, "5"))

	all, err := svc.List(ctx, AllSessions)
	require.NoError(t, err)
	require.Len(t, all, 2, `"all" selects the cross-session union`)

	all, err = svc.List(ctx, "ALL")
	require.NoError(t, err)
	require.Len(t, all, 2, "the sentinel is case-insensitive")

	all, err = svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	one, err := svc.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, one, 1)
}

func TestComment(t *testing.T) {
	repo := &fakeMistakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	q := store.Question{Question: "2+2?", CorrectAnswer: "4"}
	require.NoError(t, svc.Record(ctx, "sess-1", 1, q, "5"))
	require.NoError(t, svc.Comment(ctx, "sess-1", "2+2?", "rushed it"))

	got, _ := svc.List(ctx, "sess-1")
	require.Equal(t, "rushed it", got[0].Comment)

	require.ErrorIs(t, svc.Comment(ctx, "sess-1", "missing", "x"), store.ErrNotFound)
}
