package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/merge"
	"github.com/gitlet-go/gitlet/internal/repo"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "init",
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New(".")
			if _, err := repo.Init(cfg); err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			printer().Linef("Initialized new Gitlet repository in %v", filepath.Join(cwd, config.GitletDir))
			return nil
		},
	}
}

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "add",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			return r.Add(args[0])
		},
	}
}

func newCommitCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "commit",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			_, err = r.Commit(args[0])
			return err
		},
	}
}

func newRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "rm",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			return r.Rm(args[0])
		},
	}
}

func newLogCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "log",
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			entries, err := r.Log()
			if err != nil {
				return err
			}
			p := printer()
			for _, e := range entries {
				p.Linef("%s", e.String())
			}
			return nil
		},
	}
}

func newGlobalLogCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "global-log",
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			entries, err := r.GlobalLog()
			if err != nil {
				return err
			}
			p := printer()
			for _, e := range entries {
				p.Linef("%s", e.String())
			}
			return nil
		},
	}
}

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "find",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			ids, err := r.Find(args[0])
			if err != nil {
				return err
			}
			p := printer()
			for _, id := range ids {
				p.Line(id)
			}
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "status",
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			s, err := r.BuildStatus()
			if err != nil {
				return err
			}
			printStatus(s)
			return nil
		},
	}
}

func printStatus(s repo.Status) {
	p := printer()
	p.Line("=== Branches ===")
	for _, b := range s.Branches {
		if b == s.CurrentBranch {
			p.Linef("*%s", b)
		} else {
			p.Line(b)
		}
	}
	p.Blank()
	p.Line("=== Staged Files ===")
	for _, f := range s.StagedFiles {
		p.Line(f)
	}
	p.Blank()
	p.Line("=== Removed Files ===")
	for _, f := range s.RemovedFiles {
		p.Line(f)
	}
	p.Blank()
	p.Line("=== Modifications Not Staged For Commit ===")
	for _, f := range s.ModifiedNotStaged {
		p.Line(f)
	}
	p.Blank()
	p.Line("=== Untracked Files ===")
	for _, f := range s.UntrackedFiles {
		p.Line(f)
	}
}

func newCheckoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "checkout",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			switch len(args) {
			case 2:
				if args[0] != "--" {
					return gitliberr.New(gitliberr.ErrBadOperands, "")
				}
				return r.CheckoutFile(args[1])
			case 3:
				if args[1] != "--" {
					return gitliberr.New(gitliberr.ErrBadOperands, "")
				}
				return r.CheckoutFileFromCommit(args[0], args[2])
			case 1:
				return r.CheckoutBranch(args[0])
			default:
				return gitliberr.New(gitliberr.ErrBadOperands, "")
			}
		},
	}
}

func newBranchCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "branch",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			return r.Branch(args[0])
		},
	}
}

func newRmBranchCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "rm-branch",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			return r.RmBranch(args[0])
		},
	}
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "reset",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			return r.Reset(args[0])
		},
	}
}

func newMergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "merge",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			_, err = merge.Merge(r, args[0])
			return err
		},
	}
}

// exactArgs builds a cobra.PositionalArgs validator whose failure is always
// the spec's fixed "Incorrect operands." string, rather than cobra's own
// wording.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return gitliberr.New(gitliberr.ErrBadOperands, "")
		}
		return nil
	}
}
