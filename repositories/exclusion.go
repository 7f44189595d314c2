//go:generate go run go.uber.org/mock/mockgen -source=exclusion.go -destination=../mocks/mock_exclusion_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"santa-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

type IExclusionRepository interface {
	AddExclusion(group, giverID, receiverID string, mutual bool) error
	ListExclusions(group string) ([]Exclusion, error)
	DeleteExclusion(group, giverID, receiverID string) error
	DeleteExclusionsForMember(group, memberID string) error
}

// Exclusion records that Giver must not draw Receiver.
// Mutual exclusions also forbid the reverse pairing; the engine applies that
// symmetry, the repository just stores the flag.
type Exclusion struct {
	Group     string    `json:"group"`
	Giver     string    `json:"giver"`
	Receiver  string    `json:"receiver"`
	Mutual    bool      `json:"mutual"`
	CreatedAt time.Time `json:"created_at"`
}

type ExclusionRepository struct {
	db *badger.DB
}

func NewExclusionRepository(db *badger.DB) IExclusionRepository {
	return &ExclusionRepository{db: db}
}

func exclusionKey(group, giverID, receiverID string) []byte {
	return fmt.Appendf(nil, "exclusion:%s:%s:%s", group, giverID, receiverID)
}

// AddExclusion is idempotent: re-adding the same pair overwrites the record,
// which lets an administrator upgrade a one-way exclusion to a mutual one.
func (e ExclusionRepository) AddExclusion(group, giverID, receiverID string, mutual bool) error {
	exclusion := Exclusion{
		Group:     group,
		Giver:     giverID,
		Receiver:  receiverID,
		Mutual:    mutual,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(exclusion)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return e.db.Update(func(txn *badger.Txn) error {
		return txn.Set(exclusionKey(group, giverID, receiverID), data)
	})
}

func (e ExclusionRepository) ListExclusions(group string) ([]Exclusion, error) {
	var exclusions []Exclusion

	err := e.db.View(func(txn *badger.Txn) error {
		prefix := fmt.Appendf(nil, "exclusion:%s:", group)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var exclusion Exclusion
				if err := json.Unmarshal(val, &exclusion); err != nil {
					return err
				}
				exclusions = append(exclusions, exclusion)
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

	return exclusions, nil
}

func (e ExclusionRepository) DeleteExclusion(group, giverID, receiverID string) error {
	err := e.db.Update(func(txn *badger.Txn) error {
		key := exclusionKey(group, giverID, receiverID)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrExclusionNotFound
	}
	return err
}

// DeleteExclusionsForMember removes every exclusion naming the member, on
// either side. Called when a member leaves so stale rules never constrain
// future draws.
func (e ExclusionRepository) DeleteExclusionsForMember(group, memberID string) error {
	return e.db.Update(func(txn *badger.Txn) error {
		prefix := fmt.Appendf(nil, "exclusion:%s:", group)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		var stale [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var exclusion Exclusion
				if err := json.Unmarshal(val, &exclusion); err != nil {
					return err
				}
				if exclusion.Giver == memberID || exclusion.Receiver == memberID {
					stale = append(stale, item.KeyCopy(nil))
				}
				return nil
			})
			if err != nil {
				return err
			}
		}

		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
