package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/memid/pkg/wordlist"
)

func newListsCommand(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lists [NAME]",
		Short: "Show the word lists, or the words of one list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runListWords(cmd, args[0])
			}
			return runLists(cmd)
		},
	}
}

func runLists(cmd *cobra.Command) error {
	catalog, err := wordlist.Load()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWORDS")
	for _, l := range wordlist.All() {
		fmt.Fprintf(w, "%s\t%d\n", l, len(catalog[l]))
	}
	return w.Flush()
}

func runListWords(cmd *cobra.Command, name string) error {
	l, err := wordlist.Parse(name)
	if err != nil {
		return err
	}
	words, err := wordlist.Embedded().Words(l)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, word := range words {
		fmt.Fprintln(out, word)
	}
	return nil
}
