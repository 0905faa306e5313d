package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	lever "github.com/talentops/lever-go"
	"github.com/talentops/lever-go/internal/cmd/globals"
	"github.com/talentops/lever-go/internal/cmd/output"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		Long:  "List opportunities, postings, stages, tags, sources, users, and archive reasons.",
	}

	cmd.AddCommand(newListOpportunitiesCommand())
	cmd.AddCommand(newListPostingsCommand())
	cmd.AddCommand(newListStagesCommand())
	cmd.AddCommand(newListTagsCommand())
	cmd.AddCommand(newListSourcesCommand())
	cmd.AddCommand(newListUsersCommand())
	cmd.AddCommand(newListArchiveReasonsCommand())

	return cmd
}

func newListOpportunitiesCommand() *cobra.Command {
	var (
		page     *globals.PageFlags
		stageID  string
		posting  string
		tag      string
		email    string
		archived bool
	)

	cmd := &cobra.Command{
		Use:     "opportunities",
		Aliases: []string{"opps"},
		Short:   "List opportunities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			opts := &lever.OpportunityListOptions{
				Limit:     page.Limit,
				Offset:    page.Offset,
				StageID:   stageID,
				PostingID: posting,
				Tag:       tag,
				Email:     email,
			}
			if cmd.Flags().Changed("archived") {
				opts.Archived = &archived
			}

			resp, err := client.Opportunities.List(cmd.Context(), opts)
			if err != nil {
				return err
			}

			data := output.Data{Headers: []string{"id", "name", "stage", "location", "created"}}
			for _, opp := range resp.Data {
				data.Rows = append(data.Rows, []string{
					opp.ID, opp.Name, opp.Stage, opp.Location,
					formatTime(opp.CreatedAt),
				})
			}
			if err := formatOutput(cmd, resp, data); err != nil {
				return err
			}
			return printNextCursor(cmd, resp.HasNext, resp.Next)
		},
	}

	page = globals.AddPageFlags(cmd)
	cmd.Flags().StringVar(&stageID, "stage", "", "Filter by stage ID")
	cmd.Flags().StringVar(&posting, "posting", "", "Filter by posting ID")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by tag")
	cmd.Flags().StringVar(&email, "email", "", "Filter by candidate email")
	cmd.Flags().BoolVar(&archived, "archived", false, "Filter by archived state")

	return cmd
}

func newListPostingsCommand() *cobra.Command {
	var (
		page  *globals.PageFlags
		state string
		team  string
	)

	cmd := &cobra.Command{
		Use:   "postings",
		Short: "List job postings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			opts := &lever.PostingListOptions{
				Limit:  page.Limit,
				Offset: page.Offset,
				State:  state,
				Team:   team,
			}
			resp, err := client.Postings.List(cmd.Context(), opts)
			if err != nil {
				return err
			}

			data := output.Data{Headers: []string{"id", "title", "state", "team", "location"}}
			for _, p := range resp.Data {
				var team, location string
				if p.Categories != nil {
					team = p.Categories.Team
					location = p.Categories.Location
				}
				data.Rows = append(data.Rows, []string{p.ID, p.Text, p.State, team, location})
			}
			if err := formatOutput(cmd, resp, data); err != nil {
				return err
			}
			return printNextCursor(cmd, resp.HasNext, resp.Next)
		},
	}

	page = globals.AddPageFlags(cmd)
	cmd.Flags().StringVar(&state, "state", "", "Filter by state (published, internal, closed, draft, pending, rejected)")
	cmd.Flags().StringVar(&team, "team", "", "Filter by team")

	return cmd
}

func newListStagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List pipeline stages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.Stages.List(cmd.Context(), nil)
			if err != nil {
				return err
			}

			data := output.Data{Headers: []string{"id", "text"}}
			for _, s := range resp.Data {
				data.Rows = append(data.Rows, []string{s.ID, s.Text})
			}
			return formatOutput(cmd, resp, data)
		},
	}
}

func newListTagsCommand() *cobra.Command {
	var page *globals.PageFlags

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.Tags.List(cmd.Context(), &lever.ListOptions{
				Limit:  page.Limit,
				Offset: page.Offset,
			})
			if err != nil {
				return err
			}

			data := output.Data{Headers: []string{"text", "count"}}
			for _, t := range resp.Data {
				data.Rows = append(data.Rows, []string{t.Text, strconv.Itoa(t.Count)})
			}
			if err := formatOutput(cmd, resp, data); err != nil {
				return err
			}
			return printNextCursor(cmd, resp.HasNext, resp.Next)
		},
	}

	page = globals.AddPageFlags(cmd)
	return cmd
}

func newListSourcesCommand() *cobra.Command {
	var page *globals.PageFlags

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.Sources.List(cmd.Context(), &lever.ListOptions{
				Limit:  page.Limit,
				Offset: page.Offset,
			})
			if err != nil {
				return err
			}

			data := output.Data{Headers: []string{"text", "count"}}
			for _, s := range resp.Data {
				data.Rows = append(data.Rows, []string{s.Text, strconv.Itoa(s.Count)})
			}
			if err := formatOutput(cmd, resp, data); err != nil {
				return err
			}
			return printNextCursor(cmd, resp.HasNext, resp.Next)
		},
	}

	page = globals.AddPageFlags(cmd)
	return cmd
}

func newListUsersCommand() *cobra.Command {
	var (
		page       *globals.PageFlags
		email      string
		accessRole string
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.Users.List(cmd.Context(), &lever.UserListOptions{
				Limit:      page.Limit,
				Offset:     page.Offset,
				Email:      email,
				AccessRole: accessRole,
			})
			if err != nil {
				return err
			}

			data := output.Data{Headers: []string{"id", "name", "email", "role"}}
			for _, u := range resp.Data {
				data.Rows = append(data.Rows, []string{u.ID, u.Name, u.Email, u.AccessRole})
			}
			if err := formatOutput(cmd, resp, data); err != nil {
				return err
			}
			return printNextCursor(cmd, resp.HasNext, resp.Next)
		},
	}

	page = globals.AddPageFlags(cmd)
	cmd.Flags().StringVar(&email, "email", "", "Filter by exact email")
	cmd.Flags().StringVar(&accessRole, "role", "", "Filter by access role")

	return cmd
}

func newListArchiveReasonsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive-reasons",
		Short: "List archive reasons",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.ArchiveReasons.List(cmd.Context(), nil)
			if err != nil {
				return err
			}

			data := output.Data{Headers: []string{"id", "text", "status", "type"}}
			for _, r := range resp.Data {
				data.Rows = append(data.Rows, []string{r.ID, r.Text, r.Status, r.Type})
			}
			return formatOutput(cmd, resp, data)
		},
	}
}

// printNextCursor reports the pagination cursor after table output so
// the user can pass it back via --next.
func printNextCursor(cmd *cobra.Command, hasNext bool, next string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	if !hasNext || flags.Quiet {
		return nil
	}
	if output.DetectFormat(flags.Output) != output.FormatTable {
		return nil
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "More results available: --next %s\n", next)
	return nil
}

// formatTime renders a timestamp for table cells.
func formatTime(ts lever.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format("2006-01-02")
}

// joinTags keeps table cells on one line.
func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
