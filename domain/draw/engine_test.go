package draw

import (
	"santa-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// forbiddenRand fails the test if it is ever consulted.
type forbiddenRand struct {
	t *testing.T
}

func (r forbiddenRand) Intn(int) int {
	r.t.Fatal("random source must not be consulted")
	return 0
}

func TestShuffle(t *testing.T) {
	t.Run("should return the same multiset of elements", func(t *testing.T) {
		req := require.New(t)
		rnd := NewSeededRand(42)
		in := []ID{"a", "b", "c", "d", "e", "b"}

		out := Shuffle(rnd, in)

		req.Len(out, len(in))
		req.ElementsMatch(in, out)
	})

	t.Run("should not mutate the input slice", func(t *testing.T) {
		req := require.New(t)
		rnd := NewSeededRand(7)
		in := []ID{"a", "b", "c", "d"}
		snapshot := []ID{"a", "b", "c", "d"}

		for range 50 {
			_ = Shuffle(rnd, in)
		}

		req.Equal(snapshot, in)
	})

	t.Run("should return empty and singleton inputs unchanged", func(t *testing.T) {
		req := require.New(t)

		req.Empty(Shuffle(forbiddenRand{t}, nil))
		req.Equal([]ID{"x"}, Shuffle(forbiddenRand{t}, []ID{"x"}))
	})

	t.Run("should produce both orderings of a pair with roughly equal frequency", func(t *testing.T) {
		req := require.New(t)
		rnd := NewSeededRand(1234)
		trials := 2000
		swapped := 0

		for range trials {
			out := Shuffle(rnd, []ID{"a", "b"})
			if out[0] == "b" {
				swapped++
			}
		}

		// Sanity check on uniformity, not an exact equality.
		req.Greater(swapped, trials*2/5)
		req.Less(swapped, trials*3/5)
	})
}

func TestComputeMapping_InsufficientParticipants(t *testing.T) {
	cases := map[string][]ID{
		"empty":     {},
		"singleton": {"alice"},
	}

	for name, participants := range cases {
		t.Run("should fail immediately with "+name+" input", func(t *testing.T) {
			req := require.New(t)

			// The failure is deterministic: no attempt runs, no entropy is drawn.
			result, err := ComputeMapping(forbiddenRand{t}, participants, nil, 50)

			req.ErrorIs(err, errors.ErrInsufficientParticipants)
			req.Zero(result.Attempts)
			req.Empty(result.Pairs)
		})
	}
}

func TestComputeMapping_UnsatisfiableConstraints(t *testing.T) {
	req := require.New(t)
	rnd := NewSeededRand(99)

	// Two participants with a mutual exclusion between them: no derangement exists.
	rules := []Exclusion{{Giver: "a", Receiver: "b", Mutual: true}}
	result, err := ComputeMapping(rnd, []ID{"a", "b"}, rules, 50)

	req.ErrorIs(err, errors.ErrNoValidAssignment)
	req.Equal(Exhausted, result.State)
	req.Equal(50, result.Attempts)
	req.Empty(result.Pairs)
}

func TestComputeMapping_BasicSuccess(t *testing.T) {
	req := require.New(t)
	rnd := NewSeededRand(5)
	participants := []ID{"a", "b", "c", "d"}

	result, err := ComputeMapping(rnd, participants, nil, 0)

	req.NoError(err)
	req.Equal(Succeeded, result.State)
	req.Len(result.Pairs, len(participants))
	requireValidMapping(t, participants, nil, result.Pairs)
}

func TestComputeMapping_RespectsExclusions(t *testing.T) {
	req := require.New(t)
	participants := []ID{"a", "b", "c"}
	rules := []Exclusion{{Giver: "a", Receiver: "b"}}

	// Only one valid 3-cycle remains (a->c, c->b, b->a); every run must find it.
	for seed := int64(0); seed < 100; seed++ {
		result, err := ComputeMapping(NewSeededRand(seed), participants, rules, 0)

		req.NoError(err)
		requireValidMapping(t, participants, rules, result.Pairs)
	}
}

func TestComputeMapping_MutualExclusion(t *testing.T) {
	req := require.New(t)
	participants := []ID{"a", "b", "c", "d"}
	rules := []Exclusion{{Giver: "a", Receiver: "b", Mutual: true}}

	for seed := int64(0); seed < 100; seed++ {
		result, err := ComputeMapping(NewSeededRand(seed), participants, rules, 0)

		req.NoError(err)
		requireValidMapping(t, participants, rules, result.Pairs)
	}
}

func TestComputeMapping_UnknownRuleIdentifiersAreInert(t *testing.T) {
	req := require.New(t)
	participants := []ID{"a", "b", "c"}

	// "ghost" is not a participant; the rule must neither fail nor constrain.
	rules := []Exclusion{{Giver: "ghost", Receiver: "a", Mutual: true}}
	result, err := ComputeMapping(NewSeededRand(3), participants, rules, 0)

	req.NoError(err)
	req.Len(result.Pairs, 3)
}

func TestComputeMapping_Deterministic(t *testing.T) {
	req := require.New(t)
	participants := []ID{"a", "b", "c", "d", "e"}
	rules := []Exclusion{{Giver: "a", Receiver: "b"}, {Giver: "c", Receiver: "d", Mutual: true}}

	first, err := ComputeMapping(NewSeededRand(77), participants, rules, 0)
	req.NoError(err)
	second, err := ComputeMapping(NewSeededRand(77), participants, rules, 0)
	req.NoError(err)

	req.Equal(first, second)
}

// requireValidMapping asserts the full validity contract: a permutation of the
// participants, no self-assignment, no excluded pair.
func requireValidMapping(t *testing.T, participants []ID, rules []Exclusion, pairs []Pair) {
	t.Helper()
	req := require.New(t)

	req.Len(pairs, len(participants))

	givers := make(map[ID]bool, len(pairs))
	receivers := make(map[ID]bool, len(pairs))
	for _, p := range pairs {
		req.NotEqual(p.Giver, p.Receiver, "self-assignment for %s", p.Giver)
		req.False(givers[p.Giver], "duplicate giver %s", p.Giver)
		req.False(receivers[p.Receiver], "duplicate receiver %s", p.Receiver)
		givers[p.Giver] = true
		receivers[p.Receiver] = true

		for _, rule := range rules {
			req.False(p.Giver == rule.Giver && p.Receiver == rule.Receiver,
				"excluded pair %s->%s", p.Giver, p.Receiver)
			if rule.Mutual {
				req.False(p.Giver == rule.Receiver && p.Receiver == rule.Giver,
					"mutually excluded pair %s->%s", p.Giver, p.Receiver)
			}
		}
	}
	for _, participant := range participants {
		req.True(givers[participant], "%s never gives", participant)
		req.True(receivers[participant], "%s never receives", participant)
	}
}
