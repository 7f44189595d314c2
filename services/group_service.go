package services

import (
	"fmt"

	"santa-lab/errors"
	"santa-lab/repositories"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type IGroupService interface {
	Join(group, name, email string) (repositories.Member, error)
	Leave(group, memberID string) error
	Members(group string) ([]repositories.Member, error)
	AddExclusion(group, giverID, receiverID string, mutual bool) error
	RemoveExclusion(group, giverID, receiverID string) error
	SetWish(group, memberID, wish string) error
	Wish(group, memberID string) (string, error)
}

type JoinRequest struct {
	Group string `validate:"required,min=1,max=64"`
	Name  string `validate:"required,min=1,max=64"`
	Email string `validate:"required,email"`
}

type GroupService struct {
	members    repositories.IMemberRepository
	exclusions repositories.IExclusionRepository
	wishes     repositories.IWishRepository
}

func NewGroupService(
	members repositories.IMemberRepository,
	exclusions repositories.IExclusionRepository,
	wishes repositories.IWishRepository,
) IGroupService {
	return &GroupService{members: members, exclusions: exclusions, wishes: wishes}
}

func (s *GroupService) Join(group, name, email string) (repositories.Member, error) {
	req := JoinRequest{Group: group, Name: name, Email: email}

	// Validate business rules before touching storage.
	if err := validate.Struct(req); err != nil {
		return repositories.Member{}, fmt.Errorf("%w: %v", errors.ErrInvalidMember, err)
	}

	return s.members.CreateMember(group, name, email)
}

// Leave removes the member along with their wish and every exclusion naming
// them, so future draws never see dangling references.
func (s *GroupService) Leave(group, memberID string) error {
	if err := s.members.DeleteMember(group, memberID); err != nil {
		return err
	}
	if err := s.wishes.DeleteWish(group, memberID); err != nil {
		return err
	}
	return s.exclusions.DeleteExclusionsForMember(group, memberID)
}

func (s *GroupService) Members(group string) ([]repositories.Member, error) {
	return s.members.ListMembers(group)
}

// AddExclusion rejects self-exclusion (the engine always forbids
// self-assignment on its own) and rules naming unknown members.
func (s *GroupService) AddExclusion(group, giverID, receiverID string, mutual bool) error {
	if giverID == receiverID {
		return errors.ErrSelfExclusion
	}
	if _, err := s.members.GetMember(group, giverID); err != nil {
		return err
	}
	if _, err := s.members.GetMember(group, receiverID); err != nil {
		return err
	}
	return s.exclusions.AddExclusion(group, giverID, receiverID, mutual)
}

func (s *GroupService) RemoveExclusion(group, giverID, receiverID string) error {
	return s.exclusions.DeleteExclusion(group, giverID, receiverID)
}

func (s *GroupService) SetWish(group, memberID, wish string) error {
	if _, err := s.members.GetMember(group, memberID); err != nil {
		return err
	}
	return s.wishes.PutWish(group, memberID, wish)
}

func (s *GroupService) Wish(group, memberID string) (string, error) {
	wish, err := s.wishes.GetWish(group, memberID)
	if err != nil {
		return "", err
	}
	return wish.Text, nil
}
