package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/lyric-term/content"
	"github.com/lixenwraith/lyric-term/render"
)

// errInvalidSongs signals that check found at least one bad file
var errInvalidSongs = errors.New("one or more song files are invalid")

// newCheckCommand validates song files without opening the terminal
func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate song files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.debug)
			out := cmd.OutOrStdout()

			failed := false
			for _, path := range args {
				tl, err := content.Load(path, opts.duration)
				if err != nil {
					failed = true
					fmt.Fprintf(out, "FAIL %v\n", err)
					continue
				}
				fmt.Fprintf(out, "ok   %s: %q, %d lines, %s\n", path, tl.Title(), tl.Len(), render.FormatTime(tl.Duration()))
			}
			if failed {
				return errInvalidSongs
			}
			return nil
		},
	}
}

// newListCommand summarizes the song files in a directory
func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [DIR]",
		Short: "List song files in a directory (default ./songs)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.debug)

			dir := "songs"
			if len(args) == 1 {
				dir = args[0]
			}

			songs, err := content.Discover(dir, opts.duration)
			if err != nil {
				return err
			}
			if len(songs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no songs in %s\n", dir)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FILE\tTITLE\tLENGTH\tLINES")
			for _, s := range songs {
				if s.Err != nil {
					fmt.Fprintf(tw, "%s\t(invalid)\t-\t-\n", s.Path)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", s.Path, s.Title, render.FormatTime(s.Duration), s.Lines)
			}
			return tw.Flush()
		},
	}
}
