package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopet/internal/progress"
)

func newTestProgressService() (*ProgressService, *fakeProgressStore, *fakePetGateway) {
	store := newFakeProgressStore()
	pets := &fakePetGateway{level: 1}
	svc := NewProgressService(store, pets)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store, pets
}

func completeWalletBasicsLessons(t *testing.T, svc *ProgressService) {
	t.Helper()
	for _, id := range []string{"wb-1", "wb-2", "wb-3"} {
		_, err := svc.CompleteLesson("user-1", "wallet-basics", id)
		require.NoError(t, err)
	}
}

func TestCompleteLessonCreatesRecord(t *testing.T) {
	svc, store, _ := newTestProgressService()

	rec, err := svc.CompleteLesson("user-1", "wallet-basics", "wb-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"wb-1"}, rec.LessonsCompleted)
	assert.Len(t, store.records, 1)
}

func TestCompleteLessonUnknownModule(t *testing.T) {
	svc, _, _ := newTestProgressService()

	_, err := svc.CompleteLesson("user-1", "no-such-module", "wb-1")
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestCompleteLessonLockedModule(t *testing.T) {
	svc, _, pets := newTestProgressService()

	// defi-intro needs pet level 2
	_, err := svc.CompleteLesson("user-1", "defi-intro", "di-1")
	assert.ErrorIs(t, err, ErrModuleLocked)

	pets.level = 2
	_, err = svc.CompleteLesson("user-1", "defi-intro", "di-1")
	assert.NoError(t, err)
}

func TestSubmitQuizBeforeLessons(t *testing.T) {
	svc, _, _ := newTestProgressService()

	_, err := svc.SubmitQuiz("user-1", "wallet-basics", []int{0, 2, 2})
	assert.ErrorIs(t, err, progress.ErrLessonsIncomplete)
}

func TestSubmitQuizGradesAndGrantsXP(t *testing.T) {
	svc, _, pets := newTestProgressService()
	completeWalletBasicsLessons(t, svc)

	result, err := svc.SubmitQuiz("user-1", "wallet-basics", []int{0, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 3, result.Correct)
	assert.True(t, result.Passed)

	// wallet-basics has no practice task, so a passing quiz completes the
	// module and its XP lands on the pet
	assert.Equal(t, 150, result.XPEarned)
	assert.Equal(t, 150, pets.xpGranted)
}

func TestSubmitQuizFailingScore(t *testing.T) {
	svc, _, pets := newTestProgressService()
	completeWalletBasicsLessons(t, svc)

	result, err := svc.SubmitQuiz("user-1", "wallet-basics", []int{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
	assert.Zero(t, result.XPEarned)
	assert.Zero(t, pets.xpGranted)
}

func TestSubmitQuizRetakeDoesNotDoubleGrant(t *testing.T) {
	svc, _, pets := newTestProgressService()
	completeWalletBasicsLessons(t, svc)

	_, err := svc.SubmitQuiz("user-1", "wallet-basics", []int{0, 2, 2})
	require.NoError(t, err)

	result, err := svc.SubmitQuiz("user-1", "wallet-basics", []int{0, 2, 2})
	require.NoError(t, err)
	assert.Zero(t, result.XPEarned)
	assert.Equal(t, 150, pets.xpGranted)
}

func TestSubmitQuizAnswerCountMismatch(t *testing.T) {
	svc, _, _ := newTestProgressService()
	completeWalletBasicsLessons(t, svc)

	_, err := svc.SubmitQuiz("user-1", "wallet-basics", []int{0})
	assert.ErrorIs(t, err, ErrAnswerCount)
}

func TestCompletePracticeFinishesModule(t *testing.T) {
	svc, _, pets := newTestProgressService()

	for _, id := range []string{"ft-1", "ft-2"} {
		_, err := svc.CompleteLesson("user-1", "first-transaction", id)
		require.NoError(t, err)
	}
	_, err := svc.SubmitQuiz("user-1", "first-transaction", []int{1, 1})
	require.NoError(t, err)
	assert.Zero(t, pets.xpGranted)

	rec, err := svc.CompletePractice("user-1", "first-transaction", "abc123")
	require.NoError(t, err)
	assert.True(t, rec.PracticeCompleted)
	require.NotNil(t, rec.PracticeTxHash)
	assert.Equal(t, "abc123", *rec.PracticeTxHash)
	assert.Equal(t, 200, pets.xpGranted)
}

func TestCompletePracticeWithoutTaskRejected(t *testing.T) {
	svc, _, _ := newTestProgressService()

	_, err := svc.CompletePractice("user-1", "wallet-basics", "abc123")
	assert.ErrorIs(t, err, progress.ErrNoPracticeTask)
}

func TestOverviewMarksLockedModules(t *testing.T) {
	svc, _, _ := newTestProgressService()

	overviews, err := svc.Overview("user-1")
	require.NoError(t, err)
	require.Len(t, overviews, 3)

	byID := make(map[string]ModuleOverview, len(overviews))
	for _, o := range overviews {
		byID[o.Module.ID] = o
	}
	assert.False(t, byID["wallet-basics"].Locked)
	assert.True(t, byID["defi-intro"].Locked)
	assert.Equal(t, progress.StageNotStarted, byID["wallet-basics"].Stage)
}

func TestModuleProgressCreatesEmptyRecord(t *testing.T) {
	svc, store, _ := newTestProgressService()

	overview, err := svc.ModuleProgress("user-1", "wallet-basics")
	require.NoError(t, err)
	assert.Equal(t, 0, overview.Percent)
	assert.NotNil(t, overview.Progress)
	assert.Len(t, store.records, 1)
}
