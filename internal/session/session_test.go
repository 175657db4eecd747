package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

func TestSession_MockInterviewFlow(t *testing.T) {
	s := New()
	assert.NotEqual(t, uuid.Nil, s.ID())

	_, ok := s.SelectedJob()
	assert.False(t, ok)
	assert.ErrorIs(t, s.LoadQuestions([]string{"Q1"}), ErrNoJobSelected)

	s.SelectJob("Job Title: Data Analyst ...")
	job, ok := s.SelectedJob()
	require.True(t, ok)
	assert.Equal(t, "Job Title: Data Analyst ...", job)

	_, _, err := s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.ErrorIs(t, s.LoadQuestions(nil), ErrNoQuestions)

	require.NoError(t, s.LoadQuestions([]string{"Q1", "Q2"}))

	q, idx, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "Q1", q)
	assert.Equal(t, 0, idx)

	s.RecordEvaluation(types.Evaluation{Question: "Q1", Answer: "A1", Feedback: "good", QuickScore: 6})
	assert.True(t, s.Advance())

	q, idx, err = s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "Q2", q)
	assert.Equal(t, 1, idx)

	s.RecordEvaluation(types.Evaluation{Question: "Q2", Answer: "A2", QuickScore: 3})
	assert.False(t, s.Advance())
	assert.True(t, s.Complete())
	assert.False(t, s.Advance())

	_, _, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrInterviewComplete)
	assert.Len(t, s.Evaluations(), 2)

	s.Reset()
	assert.False(t, s.Complete())
	assert.Empty(t, s.Evaluations())
	assert.Equal(t, []string{"Q1", "Q2"}, s.Questions())
	q, _, err = s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "Q1", q)
}

func TestSession_SelectJobClearsProgress(t *testing.T) {
	s := New()
	s.SelectJob("first job")
	require.NoError(t, s.LoadQuestions([]string{"Q1"}))
	s.RecordEvaluation(types.Evaluation{Question: "Q1"})

	s.SelectJob("second job")
	assert.Empty(t, s.Questions())
	assert.Empty(t, s.Evaluations())
}

func TestSession_CopiesAreIndependent(t *testing.T) {
	s := New()
	s.SelectJob("job")
	questions := []string{"Q1"}
	require.NoError(t, s.LoadQuestions(questions))
	questions[0] = "mutated"

	got := s.Questions()
	assert.Equal(t, []string{"Q1"}, got)
	got[0] = "mutated"
	assert.Equal(t, []string{"Q1"}, s.Questions())
}

func TestSession_Snapshot(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	assert.Equal(t, s.ID(), snap.ID)
	assert.NotNil(t, snap.Questions)
	assert.NotNil(t, snap.Evaluations)
	assert.False(t, snap.Complete)

	s.SelectJob("job")
	require.NoError(t, s.LoadQuestions([]string{"Q1"}))
	s.Advance()
	snap = s.Snapshot()
	assert.True(t, snap.Complete)
	assert.Equal(t, 1, snap.CurrentIndex)
}

func TestStore(t *testing.T) {
	st := NewStore()
	s := st.Create()
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	got, err = st.Lookup(s.ID().String())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = st.Lookup("not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Delete(s.ID()))
	assert.ErrorIs(t, st.Delete(s.ID()), ErrNotFound)
	assert.Equal(t, 0, st.Len())
}

func TestStore_Concurrent(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := st.Create()
			s.SelectJob("job")
			_ = s.LoadQuestions([]string{"Q"})
			s.Advance()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, st.Len())
}
