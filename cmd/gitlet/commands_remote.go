package main

import (
	"github.com/spf13/cobra"

	"github.com/gitlet-go/gitlet/internal/remote"
)

func newAddRemoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "add-remote",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := openRepo()
			if err != nil {
				return err
			}
			return remote.AddRemote(cfg, args[0], args[1])
		},
	}
}

func newRmRemoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "rm-remote",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := openRepo()
			if err != nil {
				return err
			}
			return remote.RmRemote(cfg, args[0])
		},
	}
}

func newPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "push",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			return remote.Push(r, args[0], args[1])
		},
	}
}

func newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "fetch",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			return remote.Fetch(r, args[0], args[1])
		},
	}
}

func newPullCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "pull",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := openRepo()
			if err != nil {
				return err
			}
			return remote.Pull(r, args[0], args[1])
		},
	}
}
