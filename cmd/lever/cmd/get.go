package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/talentops/lever-go/internal/cmd/output"
)

func newGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a single resource by ID",
	}

	cmd.AddCommand(newGetOpportunityCommand())
	cmd.AddCommand(newGetPostingCommand())
	cmd.AddCommand(newGetStageCommand())
	cmd.AddCommand(newGetUserCommand())

	return cmd
}

func newGetOpportunityCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "opportunity <id>",
		Aliases: []string{"opp"},
		Short:   "Get an opportunity",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			opp, err := client.Opportunities.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			data := output.Data{
				Headers: []string{"field", "value"},
				Rows: [][]string{
					{"id", opp.ID},
					{"name", opp.Name},
					{"headline", opp.Headline},
					{"stage", opp.Stage},
					{"location", opp.Location},
					{"origin", opp.Origin},
					{"owner", opp.Owner},
					{"tags", joinTags(opp.Tags)},
					{"sources", joinTags(opp.Sources)},
					{"created", formatTime(opp.CreatedAt)},
				},
			}
			return formatOutput(cmd, opp, data)
		},
	}
}

func newGetPostingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "posting <id>",
		Short: "Get a job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			posting, err := client.Postings.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var team, location, commitment string
			if posting.Categories != nil {
				team = posting.Categories.Team
				location = posting.Categories.Location
				commitment = posting.Categories.Commitment
			}
			data := output.Data{
				Headers: []string{"field", "value"},
				Rows: [][]string{
					{"id", posting.ID},
					{"title", posting.Text},
					{"state", posting.State},
					{"team", team},
					{"location", location},
					{"commitment", commitment},
					{"followers", strconv.Itoa(posting.FollowersCount)},
					{"created", formatTime(posting.CreatedAt)},
				},
			}
			return formatOutput(cmd, posting, data)
		},
	}
}

func newGetStageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stage <id>",
		Short: "Get a pipeline stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			stage, err := client.Stages.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			data := output.Data{
				Headers: []string{"field", "value"},
				Rows: [][]string{
					{"id", stage.ID},
					{"text", stage.Text},
				},
			}
			return formatOutput(cmd, stage, data)
		},
	}
}

func newGetUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>",
		Short: "Get a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			user, err := client.Users.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			data := output.Data{
				Headers: []string{"field", "value"},
				Rows: [][]string{
					{"id", user.ID},
					{"name", user.Name},
					{"username", user.Username},
					{"email", user.Email},
					{"role", user.AccessRole},
					{"created", formatTime(user.CreatedAt)},
				},
			}
			return formatOutput(cmd, user, data)
		},
	}
}
