package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listTeam string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a team's ballots with their results",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newBallotService()
		if err != nil {
			return err
		}
		teamID, ballots, err := service.Lookup(cmd.Context(), teamInput(cmd, listTeam))
		if err != nil {
			return userError(cmd, err, teamID)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tROUND\tJUDGE\tπ\t∆\tRESULT")
		for _, s := range service.Summaries(ballots) {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", s.Index, s.Round, s.Judge, s.PNumber, s.DNumber, s.Result)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVarP(&listTeam, "team", "t", "", "team id (prompted when empty)")
}
