package e2e

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"santa-lab/domain/draw"
	"santa-lab/errors"
	"santa-lab/observability"
	"santa-lab/repositories"
	"santa-lab/services"
	"santa-lab/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/require"
)

type stack struct {
	groups services.IGroupService
	draws  services.IDrawService
	notify *sink.NotifySink
}

func newStack(t *testing.T, cfg Config) stack {
	t.Helper()
	req := require.New(t)

	dir := cfg.BadgerDir
	if dir == "" {
		dir = t.TempDir()
	}
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	members := repositories.NewMemberRepository(db)
	exclusions := repositories.NewExclusionRepository(db)
	wishes := repositories.NewWishRepository(db)
	assignments := repositories.NewAssignmentRepository(db)
	notify := sink.NewNotifySink(sink.NewLogNotifier(log), log, 100, time.Second, time.Second)

	return stack{
		groups: services.NewGroupService(members, exclusions, wishes),
		draws: services.NewDrawService(
			members, exclusions, wishes, assignments, notify,
			observability.NewMonitor(log), log, draw.NewSeededRand(cfg.DrawSeed), 0,
		),
		notify: notify,
	}
}

// Test_Full_Draw_Flow walks the whole service surface the way an operator
// would: build a group, constrain it, draw, inspect, re-draw.
func Test_Full_Draw_Flow(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadConfig()
	req.NoError(err)
	color.Enable = cfg.Colours

	s := newStack(t, cfg)
	group := "office-2026"
	year := 2026
	ctx := context.Background()

	// 1. Build the group.
	alice, err := s.groups.Join(group, "Alice", "alice@example.com")
	req.NoError(err)
	bob, err := s.groups.Join(group, "Bob", "bob@example.com")
	req.NoError(err)
	clara, err := s.groups.Join(group, "Clara", "clara@example.com")
	req.NoError(err)
	dave, err := s.groups.Join(group, "Dave", "dave@example.com")
	req.NoError(err)

	// 2. Spouses must not draw each other; Clara wants a surprise from anyone.
	req.NoError(s.groups.AddExclusion(group, alice.ID, bob.ID, true))
	req.NoError(s.groups.SetWish(group, clara.ID, "a watercolor set"))

	// 3. Draw and flush notifications.
	pairs, err := s.draws.RunDraw(ctx, group, year)
	req.NoError(err)
	req.Len(pairs, 4)
	req.NoError(s.notify.Flush(ctx))

	// 4. The persisted round honors every constraint.
	round, err := s.draws.Round(group, year)
	req.NoError(err)
	req.Len(round, 4)

	givers := map[string]bool{}
	receivers := map[string]bool{}
	for _, view := range round {
		req.NotEqual(view.GiverID, view.ReceiverID)
		req.False(view.GiverID == alice.ID && view.ReceiverID == bob.ID)
		req.False(view.GiverID == bob.ID && view.ReceiverID == alice.ID)
		givers[view.GiverID] = true
		receivers[view.ReceiverID] = true
	}
	req.Len(givers, 4)
	req.Len(receivers, 4)

	// 5. Clara's giver sees her wish.
	var clarasGiver string
	for _, view := range round {
		if view.ReceiverID == clara.ID {
			clarasGiver = view.GiverID
			req.Equal("a watercolor set", view.ReceiverWish)
		}
	}
	req.NotEmpty(clarasGiver)

	view, err := s.draws.CurrentAssignment(group, year, clarasGiver)
	req.NoError(err)
	req.Equal("Clara", view.ReceiverName)

	// 6. A re-draw replaces the round completely. Alice leaving also clears
	// her exclusions, so the three remaining members still form a 3-cycle.
	req.NoError(s.groups.Leave(group, alice.ID))
	pairs, err = s.draws.RunDraw(ctx, group, year)
	req.NoError(err)
	req.Len(pairs, 3)

	round, err = s.draws.Round(group, year)
	req.NoError(err)
	req.Len(round, 3)
}

func Test_Unsatisfiable_Group_Reports_Failure(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadConfig()
	req.NoError(err)

	s := newStack(t, cfg)
	group := "tiny-2026"
	ctx := context.Background()

	alice, err := s.groups.Join(group, "Alice", "alice@example.com")
	req.NoError(err)
	bob, err := s.groups.Join(group, "Bob", "bob@example.com")
	req.NoError(err)
	req.NoError(s.groups.AddExclusion(group, alice.ID, bob.ID, true))

	_, err = s.draws.RunDraw(ctx, group, 2026)
	req.ErrorIs(err, errors.ErrNoValidAssignment)

	// Nothing was persisted for the failed round.
	_, err = s.draws.Round(group, 2026)
	req.ErrorIs(err, errors.ErrGroupNotDrawn)
}
