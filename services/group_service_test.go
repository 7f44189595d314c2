package services

import (
	"testing"

	"santa-lab/errors"
	"santa-lab/mocks"
	"santa-lab/repositories"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type groupFixture struct {
	members    *mocks.MockIMemberRepository
	exclusions *mocks.MockIExclusionRepository
	wishes     *mocks.MockIWishRepository
	service    IGroupService
}

func newGroupFixture(t *testing.T) groupFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := groupFixture{
		members:    mocks.NewMockIMemberRepository(ctrl),
		exclusions: mocks.NewMockIExclusionRepository(ctrl),
		wishes:     mocks.NewMockIWishRepository(ctrl),
	}
	f.service = NewGroupService(f.members, f.exclusions, f.wishes)
	return f
}

func TestGroupService_Join(t *testing.T) {
	t.Run("should create the member when input is valid", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.members.EXPECT().
			CreateMember("family", "Alice", "alice@example.com").
			Return(repositories.Member{ID: "uuid-1", Name: "Alice"}, nil)

		member, err := f.service.Join("family", "Alice", "alice@example.com")

		req.NoError(err)
		req.Equal("uuid-1", member.ID)
	})

	t.Run("should reject a malformed email before touching storage", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.members.EXPECT().CreateMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.Join("family", "Alice", "not-an-email")

		req.ErrorIs(err, errors.ErrInvalidMember)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.members.EXPECT().CreateMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.Join("family", "", "alice@example.com")

		req.ErrorIs(err, errors.ErrInvalidMember)
	})
}

func TestGroupService_Leave(t *testing.T) {
	req := require.New(t)
	f := newGroupFixture(t)

	// Leaving must also clean the member's wish and exclusions.
	f.members.EXPECT().DeleteMember("family", "alice").Return(nil)
	f.wishes.EXPECT().DeleteWish("family", "alice").Return(nil)
	f.exclusions.EXPECT().DeleteExclusionsForMember("family", "alice").Return(nil)

	req.NoError(f.service.Leave("family", "alice"))
}

func TestGroupService_AddExclusion(t *testing.T) {
	t.Run("should record the rule for two known members", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.members.EXPECT().GetMember("family", "alice").Return(repositories.Member{ID: "alice"}, nil)
		f.members.EXPECT().GetMember("family", "bob").Return(repositories.Member{ID: "bob"}, nil)
		f.exclusions.EXPECT().AddExclusion("family", "alice", "bob", true).Return(nil)

		req.NoError(f.service.AddExclusion("family", "alice", "bob", true))
	})

	t.Run("should reject self-exclusion", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.exclusions.EXPECT().AddExclusion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(f.service.AddExclusion("family", "alice", "alice", false), errors.ErrSelfExclusion)
	})

	t.Run("should reject a rule naming an unknown member", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.members.EXPECT().GetMember("family", "alice").Return(repositories.Member{ID: "alice"}, nil)
		f.members.EXPECT().GetMember("family", "ghost").
			Return(repositories.Member{}, errors.ErrMemberNotFound)
		f.exclusions.EXPECT().AddExclusion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(f.service.AddExclusion("family", "alice", "ghost", false), errors.ErrMemberNotFound)
	})
}

func TestGroupService_Wishes(t *testing.T) {
	t.Run("should store a wish for a known member", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.members.EXPECT().GetMember("family", "alice").Return(repositories.Member{ID: "alice"}, nil)
		f.wishes.EXPECT().PutWish("family", "alice", "wool socks").Return(nil)

		req.NoError(f.service.SetWish("family", "alice", "wool socks"))
	})

	t.Run("should return the wish text", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.wishes.EXPECT().GetWish("family", "alice").
			Return(repositories.Wish{Text: "wool socks"}, nil)

		wish, err := f.service.Wish("family", "alice")

		req.NoError(err)
		req.Equal("wool socks", wish)
	})
}
