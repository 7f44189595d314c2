package services

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"santa-lab/contract"
	"santa-lab/domain/draw"
	"santa-lab/domain/event"
	"santa-lab/errors"
	"santa-lab/observability"
	"santa-lab/repositories"

	"github.com/samber/lo"
)

type IDrawService interface {
	RunDraw(ctx context.Context, group string, year int) ([]repositories.Assignment, error)
	CurrentAssignment(group string, year int, giverID string) (AssignmentView, error)
	Round(group string, year int) ([]AssignmentView, error)
}

// AssignmentView joins one giver's persisted pair with the receiver's
// identity and wish, ready to display or deliver.
type AssignmentView struct {
	Group        string
	Year         int
	GiverID      string
	GiverName    string
	ReceiverID   string
	ReceiverName string
	ReceiverWish string
	DrawnAt      time.Time
}

type DrawService struct {
	members     repositories.IMemberRepository
	exclusions  repositories.IExclusionRepository
	wishes      repositories.IWishRepository
	assignments repositories.IAssignmentRepository
	sink        contract.EventSink
	monitor     *observability.Monitor
	log         *slog.Logger
	rnd         draw.Rand
	maxRetries  int
}

func NewDrawService(
	members repositories.IMemberRepository,
	exclusions repositories.IExclusionRepository,
	wishes repositories.IWishRepository,
	assignments repositories.IAssignmentRepository,
	sink contract.EventSink,
	monitor *observability.Monitor,
	log *slog.Logger,
	rnd draw.Rand,
	maxRetries int,
) IDrawService {
	return &DrawService{
		members:     members,
		exclusions:  exclusions,
		wishes:      wishes,
		assignments: assignments,
		sink:        sink,
		monitor:     monitor,
		log:         log,
		rnd:         rnd,
		maxRetries:  maxRetries,
	}
}

// RunDraw performs a full draw for one group and year.
// On engine failure nothing is persisted: an existing round for the same
// group/year stays exactly as it was.
func (s *DrawService) RunDraw(ctx context.Context, group string, year int) ([]repositories.Assignment, error) {
	// 1. Load the current population. Repository ordering is stable, the
	// engine owns all the randomness.
	members, err := s.members.ListMembers(group)
	if err != nil {
		return nil, err
	}

	// 2. Load the recorded exclusion rules.
	exclusions, err := s.exclusions.ListExclusions(group)
	if err != nil {
		return nil, err
	}

	participants := lo.Map(members, func(m repositories.Member, _ int) draw.ID {
		return draw.ID(m.ID)
	})
	rules := lo.Map(exclusions, func(e repositories.Exclusion, _ int) draw.Exclusion {
		return draw.Exclusion{Giver: draw.ID(e.Giver), Receiver: draw.ID(e.Receiver), Mutual: e.Mutual}
	})

	// 3. Run the engine. Its sentinels propagate untouched so callers can
	// branch on "add more members" vs "relax constraints or retry".
	started := time.Now()
	result, err := draw.ComputeMapping(s.rnd, participants, rules, s.maxRetries)
	s.monitor.RecordDraw(result.Attempts, time.Since(started), stderrors.Is(err, errors.ErrNoValidAssignment))
	if err != nil {
		s.log.Warn("Draw failed", "group", group, "year", year,
			"members", len(members), "attempts", result.Attempts, "error", err)
		return nil, err
	}

	s.log.Info("Draw succeeded", "group", group, "year", year,
		"members", len(members), "attempts", result.Attempts)

	// 4. Persist the round, replacing any previous mapping for this group/year.
	drawnAt := time.Now().UTC()
	pairs := lo.Map(result.Pairs, func(p draw.Pair, _ int) repositories.Assignment {
		return repositories.Assignment{
			Group:      group,
			Year:       year,
			GiverID:    string(p.Giver),
			ReceiverID: string(p.Receiver),
			DrawnAt:    drawnAt,
		}
	})
	if err := s.assignments.ReplaceRound(group, year, pairs); err != nil {
		return nil, err
	}

	// 5. Queue one notice per giver. Delivery is best effort: the round is
	// already persisted and can be re-read, so a sink hiccup only warns.
	byID := lo.KeyBy(members, func(m repositories.Member) string { return m.ID })
	for _, pair := range pairs {
		giver := byID[pair.GiverID]
		receiver := byID[pair.ReceiverID]

		notice := event.AssignmentNotice{
			Group:        group,
			Year:         year,
			GiverID:      giver.ID,
			GiverName:    giver.Name,
			GiverEmail:   giver.Email,
			ReceiverName: receiver.Name,
			ReceiverWish: s.wishText(group, pair.ReceiverID),
			DrawnAt:      drawnAt,
		}
		if err := s.sink.Consume(ctx, notice); err != nil {
			s.log.Warn("Notification enqueue failed", "group", group, "giver", giver.Name, "error", err)
		}
	}

	return pairs, nil
}

func (s *DrawService) CurrentAssignment(group string, year int, giverID string) (AssignmentView, error) {
	pair, err := s.assignments.GetReceiver(group, year, giverID)
	if err != nil {
		return AssignmentView{}, err
	}

	receiver, err := s.members.GetMember(group, pair.ReceiverID)
	if err != nil {
		return AssignmentView{}, err
	}

	return AssignmentView{
		Group:        group,
		Year:         year,
		GiverID:      giverID,
		ReceiverID:   receiver.ID,
		ReceiverName: receiver.Name,
		ReceiverWish: s.wishText(group, receiver.ID),
		DrawnAt:      pair.DrawnAt,
	}, nil
}

// Round returns the full mapping of one drawn round, with member names and
// wishes joined. Members who left after the draw keep their ID as the name.
func (s *DrawService) Round(group string, year int) ([]AssignmentView, error) {
	pairs, err := s.assignments.GetRound(group, year)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListMembers(group)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(members, func(m repositories.Member) string { return m.ID })

	name := func(id string) string {
		if member, ok := byID[id]; ok {
			return member.Name
		}
		return id
	}

	return lo.Map(pairs, func(pair repositories.Assignment, _ int) AssignmentView {
		return AssignmentView{
			Group:        group,
			Year:         year,
			GiverID:      pair.GiverID,
			GiverName:    name(pair.GiverID),
			ReceiverID:   pair.ReceiverID,
			ReceiverName: name(pair.ReceiverID),
			ReceiverWish: s.wishText(group, pair.ReceiverID),
			DrawnAt:      pair.DrawnAt,
		}
	}), nil
}

// wishText flattens "no wish recorded" to empty: a missing wishlist must not
// block a notification.
func (s *DrawService) wishText(group, memberID string) string {
	wish, err := s.wishes.GetWish(group, memberID)
	if err != nil {
		return ""
	}
	return wish.Text
}
