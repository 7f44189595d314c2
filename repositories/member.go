//go:generate go run go.uber.org/mock/mockgen -source=member.go -destination=../mocks/mock_member_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"santa-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMemberRepository interface {
	CreateMember(group, name, email string) (Member, error)
	GetMember(group, memberID string) (Member, error)
	ListMembers(group string) ([]Member, error)
	DeleteMember(group, memberID string) error
}

// Member is the repository-layer representation of a group member.
type Member struct {
	ID       string    `json:"id"`
	Group    string    `json:"group"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

type MemberRepository struct {
	db *badger.DB
}

func NewMemberRepository(db *badger.DB) IMemberRepository {
	return &MemberRepository{db: db}
}

// Keys are "member:{group}:{id}". A secondary "memberidx:{group}:{email}" entry
// guards email uniqueness inside a group, mirroring the primary key's lifecycle.
func memberKey(group, memberID string) []byte {
	return fmt.Appendf(nil, "member:%s:%s", group, memberID)
}

func memberEmailKey(group, email string) []byte {
	return fmt.Appendf(nil, "memberidx:%s:%s", group, email)
}

// CreateMember persists a new member with a generated UUID.
// Joining twice with the same email in the same group is rejected.
func (m MemberRepository) CreateMember(group, name, email string) (Member, error) {
	member := Member{
		ID:       uuid.New().String(),
		Group:    group,
		Name:     name,
		Email:    email,
		JoinedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(member)
	if err != nil {
		return Member{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = m.db.Update(func(txn *badger.Txn) error {
		idxKey := memberEmailKey(group, email)
		if _, err := txn.Get(idxKey); err == nil {
			return errors.ErrMemberAlreadyExists
		}
		if err := txn.Set(idxKey, []byte(member.ID)); err != nil {
			return err
		}
		return txn.Set(memberKey(group, member.ID), data)
	})
	if err != nil {
		return Member{}, err
	}

	return member, nil
}

func (m MemberRepository) GetMember(group, memberID string) (Member, error) {
	var member Member

	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(memberKey(group, memberID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &member)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return Member{}, errors.ErrMemberNotFound
	}
	if err != nil {
		return Member{}, err
	}

	return member, nil
}

// ListMembers returns every member of the group, sorted by name then ID so the
// draw always sees the same ordering for the same population.
func (m MemberRepository) ListMembers(group string) ([]Member, error) {
	var members []Member

	err := m.db.View(func(txn *badger.Txn) error {
		prefix := fmt.Appendf(nil, "member:%s:", group)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var member Member
				if err := json.Unmarshal(val, &member); err != nil {
					return err
				}
				members = append(members, member)
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

	sort.Slice(members, func(i, j int) bool {
		if members[i].Name != members[j].Name {
			return members[i].Name < members[j].Name
		}
		return members[i].ID < members[j].ID
	})

	return members, nil
}

// DeleteMember removes the member and its email index entry.
// Wishes and exclusions referencing the member are the service layer's
// responsibility to clean up.
func (m MemberRepository) DeleteMember(group, memberID string) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		key := memberKey(group, memberID)
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		var member Member
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &member)
		}); err != nil {
			return err
		}

		if err := txn.Delete(memberEmailKey(group, member.Email)); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrMemberNotFound
	}
	return err
}
