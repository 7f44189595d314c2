package repositories

import (
	"testing"

	"santa-lab/errors"

	"github.com/stretchr/testify/require"
)

func Test_Add_And_List_Exclusions(t *testing.T) {
	req := require.New(t)
	repository := NewExclusionRepository(openTestDB(t))
	group := "family-2026"

	req.NoError(repository.AddExclusion(group, "alice", "bob", true))
	req.NoError(repository.AddExclusion(group, "clara", "dave", false))
	req.NoError(repository.AddExclusion("other-group", "x", "y", false))

	exclusions, err := repository.ListExclusions(group)
	req.NoError(err)
	req.Len(exclusions, 2)
}

func Test_Add_Exclusion_Is_Idempotent_And_Upgrades_Mutual(t *testing.T) {
	req := require.New(t)
	repository := NewExclusionRepository(openTestDB(t))
	group := "family-2026"

	req.NoError(repository.AddExclusion(group, "alice", "bob", false))
	req.NoError(repository.AddExclusion(group, "alice", "bob", true))

	exclusions, err := repository.ListExclusions(group)
	req.NoError(err)
	req.Len(exclusions, 1)
	req.True(exclusions[0].Mutual)
}

func Test_Delete_Exclusion(t *testing.T) {
	req := require.New(t)
	repository := NewExclusionRepository(openTestDB(t))
	group := "family-2026"

	req.NoError(repository.AddExclusion(group, "alice", "bob", false))
	req.NoError(repository.DeleteExclusion(group, "alice", "bob"))
	req.ErrorIs(repository.DeleteExclusion(group, "alice", "bob"), errors.ErrExclusionNotFound)
}

func Test_Delete_Exclusions_For_Member_Covers_Both_Sides(t *testing.T) {
	req := require.New(t)
	repository := NewExclusionRepository(openTestDB(t))
	group := "family-2026"

	req.NoError(repository.AddExclusion(group, "alice", "bob", false))
	req.NoError(repository.AddExclusion(group, "clara", "alice", false))
	req.NoError(repository.AddExclusion(group, "clara", "dave", false))

	req.NoError(repository.DeleteExclusionsForMember(group, "alice"))

	exclusions, err := repository.ListExclusions(group)
	req.NoError(err)
	req.Len(exclusions, 1)
	req.Equal("dave", exclusions[0].Receiver)
}
