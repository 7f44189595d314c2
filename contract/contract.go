//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"santa-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision during lifecycle events, avoiding the
// need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives domain events for asynchronous handling.
// The draw service pushes one AssignmentNotice per pair into a sink;
// the sink decides when the batch is handed to the Notifier.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Notifier delivers a batch of assignment notices to the participants.
// Transport is an external concern: the in-repo implementation logs,
// a production deployment plugs an email gateway here.
type Notifier interface {
	Notify(ctx context.Context, notices []event.AssignmentNotice) error
}
