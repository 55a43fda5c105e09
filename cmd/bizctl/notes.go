package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/viewstate"
)

func newNotesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note"},
		Short:   "Manage personal notes",
	}

	var title, content string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, session := opts.client()
			page := viewstate.NewNotesPage(api.Notes(), session, nil)
			return createRecord(commandContext(cmd), cmd.OutOrStdout(), page, models.Note{Title: title, Content: content})
		},
	}
	add.Flags().StringVar(&title, "title", "", "note title")
	add.Flags().StringVar(&content, "content", "", "note body")

	var editTitle, editContent string
	edit := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session := opts.client()
			page := viewstate.NewNotesPage(api.Notes(), session, nil)
			return editRecord(commandContext(cmd), cmd.OutOrStdout(), page, args[0], func(n *models.Note) {
				if cmd.Flags().Changed("title") {
					n.Title = editTitle
				}
				if cmd.Flags().Changed("content") {
					n.Content = editContent
				}
			})
		},
	}
	edit.Flags().StringVar(&editTitle, "title", "", "new title")
	edit.Flags().StringVar(&editContent, "content", "", "new body")

	var yes bool
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session := opts.client()
			page := viewstate.NewNotesPage(api.Notes(), session, nil)
			return deleteRecord(commandContext(cmd), cmd.OutOrStdout(), page, args[0], yes)
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	list := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, session := opts.client()
			page := viewstate.NewNotesPage(api.Notes(), session, nil)
			st, err := mountPage(commandContext(cmd), page)
			if err != nil {
				return err
			}
			defer page.Unmount()
			if len(st.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tCONTENT")
			for _, n := range st.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.Title, firstLine(n.Content, 60))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(list, add, edit, del)
	return cmd
}

func newClientNotesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client-notes",
		Short: "Manage the notes attached to a client",
	}

	list := &cobra.Command{
		Use:   "list CLIENT_ID",
		Short: "List a client's notes, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session := opts.client()
			page := viewstate.NewClientNotesPanel(api.ClientNotes(args[0]), session, nil)
			st, err := mountPage(commandContext(cmd), page)
			if err != nil {
				return err
			}
			defer page.Unmount()
			if len(st.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tTEXT")
			for _, n := range st.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), firstLine(n.Text, 60))
			}
			return tw.Flush()
		},
	}

	var text string
	add := &cobra.Command{
		Use:   "add CLIENT_ID",
		Short: "Attach a note to a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session := opts.client()
			page := viewstate.NewClientNotesPanel(api.ClientNotes(args[0]), session, nil)
			draft := models.ClientNote{ClientID: args[0], Text: text}
			return createRecord(commandContext(cmd), cmd.OutOrStdout(), page, draft)
		},
	}
	add.Flags().StringVar(&text, "text", "", "note text")

	var yes bool
	del := &cobra.Command{
		Use:   "delete CLIENT_ID NOTE_ID",
		Short: "Delete a client note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session := opts.client()
			page := viewstate.NewClientNotesPanel(api.ClientNotes(args[0]), session, nil)
			return deleteRecord(commandContext(cmd), cmd.OutOrStdout(), page, args[1], yes)
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	cmd.AddCommand(list, add, del)
	return cmd
}

func firstLine(s string, max int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " …"
	}
	if r := []rune(s); len(r) > max {
		s = string(r[:max-1]) + "…"
	}
	return s
}
