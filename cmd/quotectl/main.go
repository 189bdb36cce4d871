// Command quotectl submits a quote request to a running quote service, the same
// way the website form does.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/duynhne/quote-service/internal/quoteform"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "quotectl",
		Short:        "Client for the Sunday Studio quote service",
		SilenceUsage: true,
	}
	root.AddCommand(newSubmitCommand())
	return root
}

type submitOptions struct {
	server  string
	timeout time.Duration
	fields  map[quoteform.Field]*string
}

func newSubmitCommand() *cobra.Command {
	opts := &submitOptions{
		fields: map[quoteform.Field]*string{},
	}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send one quote request",
		Example: `  quotectl submit --server http://localhost:8080 \
    --name "Ayesha Khan" --email a@x.com --phone 0300 --details "Shoot brief"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSubmit(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.server, "server", "http://localhost:8080", "Base URL of the quote service")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Overall request timeout")
	for _, f := range []struct {
		field    quoteform.Field
		usage    string
		required bool
	}{
		{quoteform.FieldName, "Your name", true},
		{quoteform.FieldEmail, "Reply-to email address", true},
		{quoteform.FieldPhone, "Phone number", true},
		{quoteform.FieldDate, "Preferred shoot date (free text)", false},
		{quoteform.FieldDetails, "Project description", true},
	} {
		opts.fields[f.field] = flags.String(string(f.field), "", f.usage)
		if f.required {
			_ = cmd.MarkFlagRequired(string(f.field))
		}
	}

	return cmd
}

func runSubmit(cmd *cobra.Command, opts *submitOptions) error {
	form := quoteform.New(opts.server, &http.Client{Timeout: opts.timeout})
	for field, value := range opts.fields {
		if err := form.UpdateField(field, *value); err != nil {
			return err
		}
	}

	// cobra prints the returned error; for a failed send it is the form's message.
	if err := form.Submit(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), quoteform.SentMessage)
	return nil
}
