//go:generate go run go.uber.org/mock/mockgen -source=wish.go -destination=../mocks/mock_wish_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"santa-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

type IWishRepository interface {
	PutWish(group, memberID, wish string) error
	GetWish(group, memberID string) (Wish, error)
	DeleteWish(group, memberID string) error
}

// Wish is a member's free-text gift wishlist for one group.
type Wish struct {
	Group     string    `json:"group"`
	MemberID  string    `json:"member_id"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WishRepository struct {
	db *badger.DB
}

func NewWishRepository(db *badger.DB) IWishRepository {
	return &WishRepository{db: db}
}

func wishKey(group, memberID string) []byte {
	return fmt.Appendf(nil, "wish:%s:%s", group, memberID)
}

func (w WishRepository) PutWish(group, memberID, wish string) error {
	record := Wish{
		Group:     group,
		MemberID:  memberID,
		Text:      wish,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return w.db.Update(func(txn *badger.Txn) error {
		return txn.Set(wishKey(group, memberID), data)
	})
}

func (w WishRepository) GetWish(group, memberID string) (Wish, error) {
	var wish Wish

	err := w.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(wishKey(group, memberID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &wish)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return Wish{}, errors.ErrWishNotFound
	}
	if err != nil {
		return Wish{}, err
	}

	return wish, nil
}

func (w WishRepository) DeleteWish(group, memberID string) error {
	return w.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(wishKey(group, memberID))
	})
}
