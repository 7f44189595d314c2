//go:generate go run go.uber.org/mock/mockgen -source=assignment.go -destination=../mocks/mock_assignment_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"santa-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

type IAssignmentRepository interface {
	ReplaceRound(group string, year int, pairs []Assignment) error
	GetRound(group string, year int) ([]Assignment, error)
	GetReceiver(group string, year int, giverID string) (Assignment, error)
	DeleteRound(group string, year int) error
}

// Assignment is one persisted giver->receiver pair of a drawn round.
type Assignment struct {
	Group      string    `json:"group"`
	Year       int       `json:"year"`
	GiverID    string    `json:"giver_id"`
	ReceiverID string    `json:"receiver_id"`
	DrawnAt    time.Time `json:"drawn_at"`
}

type AssignmentRepository struct {
	db *badger.DB
}

func NewAssignmentRepository(db *badger.DB) IAssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Keys are "assignment:{group}:{year}:{giver}" so one round is one prefix.
func assignmentKey(group string, year int, giverID string) []byte {
	return fmt.Appendf(nil, "assignment:%s:%d:%s", group, year, giverID)
}

func roundPrefix(group string, year int) []byte {
	return fmt.Appendf(nil, "assignment:%s:%d:", group, year)
}

// ReplaceRound clears any prior mapping for the same group and year, then
// writes the new pairs, all inside one transaction. A draw that failed never
// reaches this method, so previous rounds survive failed re-draws untouched.
func (a AssignmentRepository) ReplaceRound(group string, year int, pairs []Assignment) error {
	return a.db.Update(func(txn *badger.Txn) error {
		prefix := roundPrefix(group, year)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)

		var stale [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		for _, pair := range pairs {
			data, err := json.Marshal(pair)
			if err != nil {
				return fmt.Errorf("marshal failed: %w", err)
			}
			if err := txn.Set(assignmentKey(group, year, pair.GiverID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetRound returns the full mapping of one round, sorted by giver ID.
// Returns ErrGroupNotDrawn when no pair exists for the group and year.
func (a AssignmentRepository) GetRound(group string, year int) ([]Assignment, error) {
	var pairs []Assignment

	err := a.db.View(func(txn *badger.Txn) error {
		prefix := roundPrefix(group, year)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var pair Assignment
				if err := json.Unmarshal(val, &pair); err != nil {
					return err
				}
				pairs = append(pairs, pair)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, errors.ErrGroupNotDrawn
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].GiverID < pairs[j].GiverID })

	return pairs, nil
}

func (a AssignmentRepository) GetReceiver(group string, year int, giverID string) (Assignment, error) {
	var pair Assignment

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(assignmentKey(group, year, giverID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &pair)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return Assignment{}, errors.ErrGroupNotDrawn
	}
	if err != nil {
		return Assignment{}, err
	}

	return pair, nil
}

func (a AssignmentRepository) DeleteRound(group string, year int) error {
	return a.db.Update(func(txn *badger.Txn) error {
		prefix := roundPrefix(group, year)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)

		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
