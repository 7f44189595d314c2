package draw

import (
	"santa-lab/errors"

	"github.com/samber/lo"
)

// DefaultMaxRetries bounds the randomized search when the caller does not
// provide its own budget.
const DefaultMaxRetries = 2000

// ID identifies a participant. Opaque to the engine: it only needs equality
// and map-key usage.
type ID string

// Exclusion forbids Giver from being assigned Receiver.
// When Mutual is set, the reverse pairing is forbidden as well.
type Exclusion struct {
	Giver    ID
	Receiver ID
	Mutual   bool
}

// Pair is one entry of a completed assignment: Giver offers a gift to Receiver.
type Pair struct {
	Giver    ID
	Receiver ID
}

// State tracks the search outcome.
type State int

const (
	// Searching is the transient state while attempts are still being made.
	Searching State = iota
	// Succeeded means a fully valid candidate was found.
	Succeeded
	// Exhausted means the retry budget was spent without a valid candidate.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a mapping search. There is no partial success:
// Pairs is either a complete valid assignment or nil.
type Result struct {
	State    State
	Pairs    []Pair
	Attempts int
}

// Shuffle returns a new slice holding the same elements as ids, reordered by
// a Fisher-Yates shuffle driven by rnd. The input slice is never mutated.
// Sequences of length 0 or 1 come back as an unchanged copy.
func Shuffle(rnd Rand, ids []ID) []ID {
	out := make([]ID, len(ids))
	copy(out, ids)
	for i := len(out) - 1; i >= 1; i-- {
		j := rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ComputeMapping searches for an assignment where every participant gives to
// exactly one other participant, nobody receives themselves, and no pair
// violates the exclusion rules.
//
// The search is a bounded randomized retry loop: each attempt shuffles the
// participant list into a candidate receiver ordering and validates it
// positionally against the unshuffled giver ordering. The first fully valid
// candidate wins. maxRetries <= 0 selects DefaultMaxRetries.
//
// Known limitation, kept on purpose: this is a probabilistic search, not an
// exact constraint solver. Under heavy exclusion sets it may return
// ErrNoValidAssignment even though a valid assignment exists. Callers that
// hit exhaustion should relax constraints or retry, not expect a proof of
// infeasibility.
//
// Fewer than two participants fails immediately with
// ErrInsufficientParticipants; no attempt is made and rnd is never consulted.
func ComputeMapping(rnd Rand, participants []ID, rules []Exclusion, maxRetries int) (Result, error) {
	if len(participants) < 2 {
		return Result{State: Exhausted}, errors.ErrInsufficientParticipants
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	forbidden := buildForbidden(participants, rules)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		receivers := Shuffle(rnd, participants)
		if !validCandidate(participants, receivers, forbidden) {
			continue
		}
		pairs := lo.Map(participants, func(giver ID, i int) Pair {
			return Pair{Giver: giver, Receiver: receivers[i]}
		})
		return Result{State: Succeeded, Pairs: pairs, Attempts: attempt}, nil
	}

	return Result{State: Exhausted, Attempts: maxRetries}, errors.ErrNoValidAssignment
}

// buildForbidden derives the forbidden-receiver index. Every participant is
// forbidden from receiving themselves, independent of any input rule.
// Rules naming identifiers absent from participants still get an entry;
// those entries are inert because the identifier never appears as a giver.
func buildForbidden(participants []ID, rules []Exclusion) map[ID]map[ID]struct{} {
	forbidden := make(map[ID]map[ID]struct{}, len(participants))
	for _, p := range participants {
		forbidden[p] = map[ID]struct{}{p: {}}
	}
	for _, rule := range rules {
		forbid(forbidden, rule.Giver, rule.Receiver)
		if rule.Mutual {
			forbid(forbidden, rule.Receiver, rule.Giver)
		}
	}
	return forbidden
}

func forbid(forbidden map[ID]map[ID]struct{}, giver, receiver ID) {
	if _, ok := forbidden[giver]; !ok {
		forbidden[giver] = make(map[ID]struct{})
	}
	forbidden[giver][receiver] = struct{}{}
}

// validCandidate rejects on the first violating pair.
func validCandidate(givers, receivers []ID, forbidden map[ID]map[ID]struct{}) bool {
	for i, giver := range givers {
		if _, banned := forbidden[giver][receivers[i]]; banned {
			return false
		}
	}
	return true
}
