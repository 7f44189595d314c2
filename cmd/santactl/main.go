package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"time"

	"santa-lab/domain/draw"
	"santa-lab/errors"
	"santa-lab/internal"
	"santa-lab/observability"
	"santa-lab/repositories"
	"santa-lab/services"
	"santa-lab/sink"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

const usage = `Usage: santactl <command> [flags]

Commands:
  join         add a member to a group
  leave        remove a member from a group
  members      list the members of a group
  exclude      forbid a giver->receiver pairing
  unexclude    remove an exclusion
  wish         record a member's wishlist
  draw         run the assignment draw for a group
  assignments  show the drawn round of a group
`

type app struct {
	groups services.IGroupService
	draws  services.IDrawService
	notify *sink.NotifySink
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		color.Red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return fmt.Errorf("missing command")
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.LoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() { _ = db.Close() }()

	// 3. Wiring
	members := repositories.NewMemberRepository(db)
	exclusions := repositories.NewExclusionRepository(db)
	wishes := repositories.NewWishRepository(db)
	assignments := repositories.NewAssignmentRepository(db)

	notify := sink.NewNotifySink(sink.NewLogNotifier(log), log,
		config.NotifyBatchSize, config.NotifyFlushTimeout, config.NotifyTimeout)

	a := app{
		groups: services.NewGroupService(members, exclusions, wishes),
		draws: services.NewDrawService(
			members, exclusions, wishes, assignments, notify,
			observability.NewMonitor(log), log, draw.NewRand(), config.MaxRetries,
		),
		notify: notify,
	}

	return a.dispatch(args[0], args[1:])
}

func (a app) dispatch(command string, args []string) error {
	switch command {
	case "join":
		return a.join(args)
	case "leave":
		return a.leave(args)
	case "members":
		return a.members(args)
	case "exclude":
		return a.exclude(args)
	case "unexclude":
		return a.unexclude(args)
	case "wish":
		return a.wish(args)
	case "draw":
		return a.draw(args)
	case "assignments":
		return a.assignments(args)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a app) join(args []string) error {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	group := fs.String("group", "", "group name")
	name := fs.String("name", "", "member name")
	email := fs.String("email", "", "member email")
	_ = fs.Parse(args)

	member, err := a.groups.Join(*group, *name, *email)
	if err != nil {
		return err
	}
	color.Green.Printf("Member %s joined %s (id %s)\n", member.Name, member.Group, member.ID)
	return nil
}

func (a app) leave(args []string) error {
	fs := flag.NewFlagSet("leave", flag.ExitOnError)
	group := fs.String("group", "", "group name")
	member := fs.String("member", "", "member id")
	_ = fs.Parse(args)

	if err := a.groups.Leave(*group, *member); err != nil {
		return err
	}
	color.Green.Printf("Member %s left %s\n", *member, *group)
	return nil
}

func (a app) members(args []string) error {
	fs := flag.NewFlagSet("members", flag.ExitOnError)
	group := fs.String("group", "", "group name")
	_ = fs.Parse(args)

	members, err := a.groups.Members(*group)
	if err != nil {
		return err
	}

	table := newTable([]string{"ID", "Name", "Email", "Joined"})
	for _, m := range members {
		table.Append([]string{m.ID, m.Name, m.Email, m.JoinedAt.Format(time.DateOnly)})
	}
	table.Render()
	return nil
}

func (a app) exclude(args []string) error {
	fs := flag.NewFlagSet("exclude", flag.ExitOnError)
	group := fs.String("group", "", "group name")
	giver := fs.String("giver", "", "giver member id")
	receiver := fs.String("receiver", "", "receiver member id")
	mutual := fs.Bool("mutual", false, "forbid both directions")
	_ = fs.Parse(args)

	if err := a.groups.AddExclusion(*group, *giver, *receiver, *mutual); err != nil {
		return err
	}
	color.Green.Println("Exclusion recorded")
	return nil
}

func (a app) unexclude(args []string) error {
	fs := flag.NewFlagSet("unexclude", flag.ExitOnError)
	group := fs.String("group", "", "group name")
	giver := fs.String("giver", "", "giver member id")
	receiver := fs.String("receiver", "", "receiver member id")
	_ = fs.Parse(args)

	if err := a.groups.RemoveExclusion(*group, *giver, *receiver); err != nil {
		return err
	}
	color.Green.Println("Exclusion removed")
	return nil
}

func (a app) wish(args []string) error {
	fs := flag.NewFlagSet("wish", flag.ExitOnError)
	group := fs.String("group", "", "group name")
	member := fs.String("member", "", "member id")
	text := fs.String("text", "", "wishlist text")
	_ = fs.Parse(args)

	if err := a.groups.SetWish(*group, *member, *text); err != nil {
		return err
	}
	color.Green.Println("Wish recorded")
	return nil
}

func (a app) draw(args []string) error {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	group := fs.String("group", "", "group name")
	year := fs.Int("year", time.Now().Year(), "round year")
	_ = fs.Parse(args)

	ctx := context.Background()
	pairs, err := a.draws.RunDraw(ctx, *group, *year)

	// Translate the engine's two failure modes into actionable advice.
	switch {
	case stderrors.Is(err, errors.ErrInsufficientParticipants):
		return fmt.Errorf("%w: add more members to %q before drawing", err, *group)
	case stderrors.Is(err, errors.ErrNoValidAssignment):
		return fmt.Errorf("%w: relax exclusion constraints or retry", err)
	case err != nil:
		return err
	}

	// Deliver the queued notices before the process exits.
	if err := a.notify.Flush(ctx); err != nil {
		return err
	}

	color.Green.Printf("Draw complete: %d assignments for %s/%d\n", len(pairs), *group, *year)
	return nil
}

func (a app) assignments(args []string) error {
	fs := flag.NewFlagSet("assignments", flag.ExitOnError)
	group := fs.String("group", "", "group name")
	year := fs.Int("year", time.Now().Year(), "round year")
	_ = fs.Parse(args)

	round, err := a.draws.Round(*group, *year)
	if err != nil {
		return err
	}

	table := newTable([]string{"Giver", "Receiver", "Wish", "Drawn"})
	for _, view := range round {
		table.Append([]string{view.GiverName, view.ReceiverName, view.ReceiverWish,
			view.DrawnAt.Format(time.DateOnly)})
	}
	table.Render()
	return nil
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
