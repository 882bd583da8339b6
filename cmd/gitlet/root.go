package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/diag"
	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/repo"
	"github.com/gitlet-go/gitlet/internal/ui"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "gitlet",
		Short:         "A miniature version-control system",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gitliberr.New(gitliberr.ErrNoCommand, "")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				diag.Enable(os.Stderr)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic trace output")

	root.AddCommand(
		newInitCommand(),
		newAddCommand(),
		newCommitCommand(),
		newRmCommand(),
		newLogCommand(),
		newGlobalLogCommand(),
		newFindCommand(),
		newStatusCommand(),
		newCheckoutCommand(),
		newBranchCommand(),
		newRmBranchCommand(),
		newResetCommand(),
		newMergeCommand(),
		newAddRemoteCommand(),
		newRmRemoteCommand(),
		newPushCommand(),
		newFetchCommand(),
		newPullCommand(),
	)
	return root
}

// openRepo binds a Repository to the current working directory, failing
// with the spec's "Not in an initialized Gitlet directory." if none exists.
func openRepo() (*repo.Repository, *config.Config, error) {
	cfg := config.New(".")
	r, err := repo.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return r, cfg, nil
}

// stdout is the writer every command prints through, overridden by tests to
// capture output instead of going to the real process stdout.
var stdout io.Writer = os.Stdout

func printer() *ui.Printer {
	return ui.New(stdout)
}
