package repositories

import (
	"testing"

	"santa-lab/errors"

	"github.com/stretchr/testify/require"
)

func Test_Put_Get_And_Overwrite_Wish(t *testing.T) {
	req := require.New(t)
	repository := NewWishRepository(openTestDB(t))
	group := "family-2026"

	req.NoError(repository.PutWish(group, "alice", "wool socks"))
	req.NoError(repository.PutWish(group, "alice", "a good coffee grinder"))

	wish, err := repository.GetWish(group, "alice")
	req.NoError(err)
	req.Equal("a good coffee grinder", wish.Text)
}

func Test_Get_Missing_Wish(t *testing.T) {
	req := require.New(t)
	repository := NewWishRepository(openTestDB(t))

	_, err := repository.GetWish("family-2026", "nobody")
	req.ErrorIs(err, errors.ErrWishNotFound)
}

func Test_Delete_Wish(t *testing.T) {
	req := require.New(t)
	repository := NewWishRepository(openTestDB(t))
	group := "family-2026"

	req.NoError(repository.PutWish(group, "alice", "wool socks"))
	req.NoError(repository.DeleteWish(group, "alice"))

	_, err := repository.GetWish(group, "alice")
	req.ErrorIs(err, errors.ErrWishNotFound)
}
