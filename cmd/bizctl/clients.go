package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/viewstate"
	"bizdesk_backend/pkg/utils"
)

type clientFlags struct {
	name, email, phone, address, postalCode, nationality, dateOfBirth, appointment, status string
}

func (f *clientFlags) register(fs *pflag.FlagSet, withStatus bool) {
	fs.StringVar(&f.name, "name", "", "client name")
	fs.StringVar(&f.email, "email", "", "client email")
	fs.StringVar(&f.phone, "phone", "", "phone number")
	fs.StringVar(&f.address, "address", "", "postal address")
	fs.StringVar(&f.postalCode, "postal-code", "", "postal code")
	fs.StringVar(&f.nationality, "nationality", "", "nationality")
	fs.StringVar(&f.dateOfBirth, "dob", "", "date of birth, YYYY-MM-DD")
	fs.StringVar(&f.appointment, "appointment", "", "appointment, YYYY-MM-DDTHH:mm")
	if withStatus {
		fs.StringVar(&f.status, "status", "", "Active or Inactive")
	}
}

// apply copies the flags set on the command line onto c. An explicitly
// empty optional flag clears the field.
func (f *clientFlags) apply(fs *pflag.FlagSet, c *models.Client) {
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	setOpt := func(name string, dst **string, v string) {
		if fs.Changed(name) {
			*dst = utils.NormalizeOptional(&v)
		}
	}
	set("name", &c.Name, f.name)
	set("email", &c.Email, f.email)
	setOpt("phone", &c.Phone, f.phone)
	setOpt("address", &c.Address, f.address)
	setOpt("postal-code", &c.PostalCode, f.postalCode)
	setOpt("nationality", &c.Nationality, f.nationality)
	setOpt("dob", &c.DateOfBirth, f.dateOfBirth)
	setOpt("appointment", &c.AppointmentDateTime, f.appointment)
	if fs.Changed("status") {
		c.Status = models.ClientStatus(f.status)
	}
}

func newClientsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client"},
		Short:   "List and edit clients",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List clients, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				api, session := opts.client()
				page := viewstate.NewClientsPage(api.Clients(), session, nil)
				st, err := mountPage(commandContext(cmd), page)
				if err != nil {
					return err
				}
				defer page.Unmount()
				printClients(cmd, st.Items)
				return nil
			},
		},
		newClientAddCmd(opts),
		newClientEditCmd(opts),
		newClientDeleteCmd(opts),
	)
	return cmd
}

func newClientAddCmd(opts *globalOptions) *cobra.Command {
	var f clientFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, session := opts.client()
			var draft models.Client
			f.apply(cmd.Flags(), &draft)
			page := viewstate.NewClientsPage(api.Clients(), session, nil)
			return createRecord(commandContext(cmd), cmd.OutOrStdout(), page, draft)
		},
	}
	f.register(cmd.Flags(), false)
	return cmd
}

func newClientEditCmd(opts *globalOptions) *cobra.Command {
	var f clientFlags
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session := opts.client()
			page := viewstate.NewClientsPage(api.Clients(), session, nil)
			return editRecord(commandContext(cmd), cmd.OutOrStdout(), page, args[0], func(c *models.Client) {
				f.apply(cmd.Flags(), c)
			})
		},
	}
	f.register(cmd.Flags(), true)
	return cmd
}

func newClientDeleteCmd(opts *globalOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, session := opts.client()
			page := viewstate.NewClientsPage(api.Clients(), session, nil)
			return deleteRecord(commandContext(cmd), cmd.OutOrStdout(), page, args[0], yes)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}

func printClients(cmd *cobra.Command, clients []models.Client) {
	if len(clients) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No clients.")
		return
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSTATUS\tAPPOINTMENT")
	for _, c := range clients {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Status, utils.Deref(c.AppointmentDateTime))
	}
	_ = tw.Flush()
}
