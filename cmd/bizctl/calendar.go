package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/schedule"
	"bizdesk_backend/pkg/utils"
)

func newCalendarCmd(opts *globalOptions) *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the days with appointments, or one day's appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, _, err := opts.requireSession()
			if err != nil {
				return err
			}
			view, err := api.Calendar(commandContext(cmd), day)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if day == "" {
				if len(view.Days) == 0 {
					fmt.Fprintln(out, "No appointments.")
					return nil
				}
				for _, d := range view.Days {
					fmt.Fprintf(out, "%s  %d appointment(s)\n", d, len(view.Appointments[d]))
				}
				return nil
			}
			printAppointments(cmd, view.Selected)
			return nil
		},
	}
	cmd.Flags().StringVar(&day, "date", "", "day to show, YYYY-MM-DD")
	return cmd
}

func newNextCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next upcoming appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, _, err := opts.requireSession()
			if err != nil {
				return err
			}
			summary, err := api.Summary(commandContext(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if summary.NextAppointment == nil {
				fmt.Fprintln(out, "No upcoming appointments.")
				return nil
			}
			next := summary.NextAppointment
			fmt.Fprintf(out, "%s with %s <%s> (%s)\n", utils.Deref(next.AppointmentDateTime), next.Name, next.Email, summary.Timezone)
			return nil
		},
	}
}

func printAppointments(cmd *cobra.Command, clients []models.Client) {
	if len(clients) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No appointments on this day.")
		return
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tCLIENT\tEMAIL\tPHONE")
	for _, c := range clients {
		at := utils.Deref(c.AppointmentDateTime)
		if t, ok := schedule.ParseAppointment(c, time.UTC); ok {
			at = t.Format("15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", at, c.Name, c.Email, utils.Deref(c.Phone))
	}
	_ = tw.Flush()
}
