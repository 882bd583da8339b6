package repo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/gitlettest"
)

func TestCheckoutFileRestoresHeadVersion(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("v1")
	require.NoError(t, err)

	gitlettest.WriteWorkingFile(t, r, "a.txt", "v2 uncommitted")
	require.NoError(t, r.CheckoutFile("a.txt"))

	data, err := r.Tree.Read("a.txt")
	require.NoError(t, err)
	require.Equal(t, "v1", string(data))
}

func TestCheckoutFileFailsWhenNotTracked(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	err := r.CheckoutFile("nope.txt")
	require.ErrorContains(t, err, "File does not exist in that commit.")
}

func TestCheckoutFileFromCommit(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Add("a.txt"))
	firstID, err := r.Commit("v1")
	require.NoError(t, err)

	gitlettest.WriteWorkingFile(t, r, "a.txt", "v2")
	require.NoError(t, r.Add("a.txt"))
	_, err = r.Commit("v2")
	require.NoError(t, err)

	require.NoError(t, r.CheckoutFileFromCommit(firstID, "a.txt"))
	data, err := r.Tree.Read("a.txt")
	require.NoError(t, err)
	require.Equal(t, "v1", string(data))
}

func TestCheckoutFileFromCommitBadID(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	err := r.CheckoutFileFromCommit("deadbeef", "a.txt")
	require.ErrorContains(t, err, "No commit with that id exists.")
}

func TestCheckoutBranchSwitchesWorkingTreeAndHead(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "master content")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("on master")
	require.NoError(t, err)

	require.NoError(t, r.Branch("feature"))
	require.NoError(t, r.CheckoutBranch("feature"))
	gitlettest.WriteWorkingFile(t, r, "b.txt", "feature content")
	require.NoError(t, r.Add("b.txt"))
	_, err = r.Commit("on feature")
	require.NoError(t, err)

	require.NoError(t, r.CheckoutBranch("master"))
	exists, err := r.Tree.Exists("b.txt")
	require.NoError(t, err)
	require.False(t, exists, "checkout master should remove feature-only files")

	branch, err := r.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "master", branch)
}

func TestCheckoutBranchFailsIfAlreadyCurrent(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	err := r.CheckoutBranch("master")
	require.ErrorContains(t, err, "No need to checkout the current branch.")
}

func TestCheckoutBranchFailsIfNotExist(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	err := r.CheckoutBranch("ghost")
	require.ErrorContains(t, err, "No such branch exists.")
}

func TestCheckoutBranchFailsOnUntrackedInTheWay(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	require.NoError(t, r.Branch("feature"))
	require.NoError(t, r.CheckoutBranch("feature"))
	gitlettest.WriteWorkingFile(t, r, "a.txt", "feature version")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("add a on feature")
	require.NoError(t, err)
	require.NoError(t, r.CheckoutBranch("master"))

	gitlettest.WriteWorkingFile(t, r, "a.txt", "untracked on master")

	err = r.CheckoutBranch("feature")
	require.ErrorContains(t, err, "There is an untracked file in the way")
}
