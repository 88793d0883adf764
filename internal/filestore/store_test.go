package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGoals() []*domain.Goal {
	rich := testutil.NewTestGoal("Learn Go",
		testutil.WithEstimate(40),
		testutil.WithActualHours(12.75),
		testutil.WithTags("go", "backend"),
		testutil.WithMilestones(2, 1),
		testutil.WithLinkedMilestone("Tour", "https://go.dev/tour"),
		testutil.WithNote("start small"),
		testutil.WithFailure("skipped a week"),
		testutil.WithComment("Bob", "Have you tried breaking this down further?"),
	)
	at := testutil.FixedNow.Add(time.Hour + 42*time.Nanosecond)
	rich.AddNote("design doc", []domain.AttachmentRef{
		domain.NewAttachmentRef("blob-1", "design.pdf", "application/pdf", 2048, at),
	}, domain.NoteProblem, domain.ImpactNegative, at)

	done := testutil.NewTestGoal("Run 5k", testutil.WithCompleted("trained daily"))
	return []*domain.Goal{rich, done}
}

func newStore(t *testing.T, format string) *Store {
	t.Helper()
	codec, err := CodecFor(format)
	require.NoError(t, err)
	s, err := New(t.TempDir(), codec)
	require.NoError(t, err)
	return s
}

func TestStore_GoalsRoundTrip(t *testing.T) {
	for _, format := range []string{"yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t, format)

			goals := sampleGoals()
			require.NoError(t, s.SaveGoals(ctx, goals))

			loaded, err := s.LoadGoals(ctx)
			require.NoError(t, err)
			assert.Equal(t, goals, loaded)
		})
	}
}

func TestStore_SaveOfLoadIsIdempotent(t *testing.T) {
	for _, format := range []string{"yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t, format)

			require.NoError(t, s.SaveGoals(ctx, sampleGoals()))
			before, err := os.ReadFile(s.GoalsPath())
			require.NoError(t, err)

			loaded, err := s.LoadGoals(ctx)
			require.NoError(t, err)
			require.NoError(t, s.SaveGoals(ctx, loaded))

			after, err := os.ReadFile(s.GoalsPath())
			require.NoError(t, err)
			assert.Equal(t, string(before), string(after))
		})
	}
}

func TestStore_MissingFilesAreEmptySlots(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, "yaml")

	goals, err := s.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)

	_, ok, err := s.LoadUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ClearUser(ctx), "clearing an empty slot is fine")
}

func TestStore_UserSlot(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, "yaml")

	u := testutil.NewTestUser("Ada")
	u.Bio = "first programmer"
	require.NoError(t, s.SaveUser(ctx, u))

	got, ok, err := s.LoadUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, u, got)

	require.NoError(t, s.ClearUser(ctx))
	_, err = os.Stat(s.SessionPath())
	assert.True(t, os.IsNotExist(err))
}

func TestStore_NoTempFilesLeftBehind(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, "json")
	require.NoError(t, s.SaveGoals(ctx, sampleGoals()))
	require.NoError(t, s.SaveUser(ctx, testutil.NewTestUser("Ada")))

	entries, err := os.ReadDir(filepath.Dir(s.GoalsPath()))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), tempFilePrefix), e.Name())
	}
	assert.Len(t, entries, 2)
}

func TestStore_RejectsNewerVersion(t *testing.T) {
	s := newStore(t, "yaml")
	require.NoError(t, os.WriteFile(s.GoalsPath(), []byte("version: 9\ngoals: []\n"), 0o600))

	_, err := s.LoadGoals(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer")
}

func TestStore_CorruptDocument(t *testing.T) {
	s := newStore(t, "json")
	require.NoError(t, os.WriteFile(s.GoalsPath(), []byte("{not json"), 0o600))

	_, err := s.LoadGoals(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestCodecFor_Unknown(t *testing.T) {
	_, err := CodecFor("toml")
	assert.Error(t, err)
}
