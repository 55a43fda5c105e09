package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/pkg/apiclient"
)

const defaultAPIURL = "http://localhost:8080/api/v1"

type globalOptions struct {
	apiURL string
	token  string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "bizctl",
		Short:         "Manage clients, notes and appointments of a bizdesk account",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", envOr("BIZCTL_API_URL", defaultAPIURL), "API base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("BIZCTL_TOKEN"), "access token (defaults to the saved login)")

	root.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(),
		newWhoamiCmd(opts),
		newClientsCmd(opts),
		newNotesCmd(opts),
		newClientNotesCmd(opts),
		newCalendarCmd(opts),
		newNextCmd(opts),
	)
	return root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

var errLoginRequired = errors.New("not logged in: run `bizctl login` or pass --token")

// client returns an API client and the session decoded from the token.
// Anonymous use is allowed; list pages then come back empty.
func (o *globalOptions) client() (*apiclient.Client, models.Session) {
	token := o.token
	if token == "" {
		token, _ = loadToken()
	}
	return apiclient.New(o.apiURL, token, nil), sessionFromToken(token)
}

// requireSession is client for commands that make no sense anonymously.
func (o *globalOptions) requireSession() (*apiclient.Client, models.Session, error) {
	api, session := o.client()
	if !session.Authenticated() {
		return nil, session, errLoginRequired
	}
	return api, session, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
