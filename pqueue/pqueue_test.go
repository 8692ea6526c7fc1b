package pqueue_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/heapath/pqueue"
)

// QueueSuite groups the priority queue contract tests.
type QueueSuite struct {
	suite.Suite
	q *pqueue.Queue[string]
}

func (s *QueueSuite) SetupTest() {
	s.q = pqueue.New[string]()
}

func (s *QueueSuite) TestExtractMinOnEmpty() {
	_, _, err := s.q.ExtractMin()
	require.ErrorIs(s.T(), err, pqueue.ErrEmptyQueue)

	_, _, err = s.q.PeekMin()
	require.ErrorIs(s.T(), err, pqueue.ErrEmptyQueue)
}

func (s *QueueSuite) TestExtractsInPriorityOrder() {
	require.NoError(s.T(), s.q.Insert("C", 3))
	require.NoError(s.T(), s.q.Insert("A", 1))
	require.NoError(s.T(), s.q.Insert("D", math.Inf(1)))
	require.NoError(s.T(), s.q.Insert("B", 2))
	require.Equal(s.T(), 4, s.q.Len())

	var got []string
	for s.q.Len() > 0 {
		v, _, err := s.q.ExtractMin()
		require.NoError(s.T(), err)
		got = append(got, v)
	}
	require.Equal(s.T(), []string{"A", "B", "C", "D"}, got)
}

func (s *QueueSuite) TestDuplicateInsertRejected() {
	require.NoError(s.T(), s.q.Insert("A", 1))
	require.ErrorIs(s.T(), s.q.Insert("A", 0), pqueue.ErrDuplicateItem)
	p, ok := s.q.Priority("A")
	require.True(s.T(), ok)
	require.Equal(s.T(), 1.0, p)
}

func (s *QueueSuite) TestDecreaseKeyReordersQueue() {
	require.NoError(s.T(), s.q.Insert("A", 5))
	require.NoError(s.T(), s.q.Insert("B", 7))
	require.NoError(s.T(), s.q.Insert("C", math.Inf(1)))

	require.NoError(s.T(), s.q.DecreaseKey("C", 1))
	v, d, err := s.q.PeekMin()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "C", v)
	require.Equal(s.T(), 1.0, d)
}

func (s *QueueSuite) TestDecreaseKeyMustBeStrictlySmaller() {
	require.NoError(s.T(), s.q.Insert("A", 5))

	require.ErrorIs(s.T(), s.q.DecreaseKey("A", 5), pqueue.ErrInvalidOperation)
	require.ErrorIs(s.T(), s.q.DecreaseKey("A", 6), pqueue.ErrInvalidOperation)
	p, _ := s.q.Priority("A")
	require.Equal(s.T(), 5.0, p, "failed decrease leaves priority untouched")
}

func (s *QueueSuite) TestDecreaseKeyOfMissingItem() {
	require.ErrorIs(s.T(), s.q.DecreaseKey("Z", 1), pqueue.ErrNotInQueue)

	require.NoError(s.T(), s.q.Insert("A", 1))
	_, _, err := s.q.ExtractMin()
	require.NoError(s.T(), err)
	require.False(s.T(), s.q.Contains("A"))
	require.ErrorIs(s.T(), s.q.DecreaseKey("A", 0), pqueue.ErrNotInQueue)
}

func (s *QueueSuite) TestNaNPriorityRejected() {
	require.ErrorIs(s.T(), s.q.Insert("A", math.NaN()), pqueue.ErrInvalidPriority)
	require.NoError(s.T(), s.q.Insert("A", 1))
	require.ErrorIs(s.T(), s.q.DecreaseKey("A", math.NaN()), pqueue.ErrInvalidPriority)
}

func (s *QueueSuite) TestEqualPrioritiesServedInInsertionOrder() {
	for _, v := range []string{"x", "y", "z"} {
		require.NoError(s.T(), s.q.Insert(v, 4))
	}
	for _, want := range []string{"x", "y", "z"} {
		v, _, err := s.q.ExtractMin()
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, v)
	}
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}
