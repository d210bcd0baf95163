package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/emails"
	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand(emails.Catalog())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseJob(t *testing.T) {
	t.Parallel()

	job, err := parseJob([]byte(`
template: token_launch
params:
  name: Meteora
  symbol: MET
to: recipient@example.com
cc:
  - a@example.com
  - b@example.com
from: onboarding@resend.dev
subject: "New Token Launch: Meteora (MET)"
tags:
  - name: category
    value: token_launch
`))
	require.NoError(t, err)

	params := job.sendParams()
	require.Equal(t, "token_launch", params.Template)
	require.Equal(t, mailer.Params{"name": "Meteora", "symbol": "MET"}, params.Params)
	require.Equal(t, []string{"recipient@example.com"}, params.To)
	require.Equal(t, []string{"a@example.com", "b@example.com"}, params.CC)
	require.Equal(t, []mailer.Tag{{Name: "category", Value: "token_launch"}}, params.Tags)
}

func TestParseJob_InvalidRecipients(t *testing.T) {
	t.Parallel()

	_, err := parseJob([]byte("to:\n  address: x@example.com\n"))
	require.Error(t, err)
}

func TestSendOptions_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(file, []byte("template: token_launch\nparams:\n  name: Meteora\nto: a@example.com\n"), 0o600))

	opts := &sendOptions{
		file:   file,
		params: []string{"symbol=JUP", "name=Jupiter"},
		to:     []string{"b@example.com"},
		tags:   []string{"category=launch"},
	}

	params, err := opts.sendParams()
	require.NoError(t, err)
	require.Equal(t, mailer.Params{"name": "Jupiter", "symbol": "JUP"}, params.Params)
	require.Equal(t, []string{"b@example.com"}, params.To)
	require.Equal(t, []mailer.Tag{{Name: "category", Value: "launch"}}, params.Tags)
}

func TestSendOptions_RequiresTemplate(t *testing.T) {
	t.Parallel()

	_, err := (&sendOptions{}).sendParams()
	require.Error(t, err)
}

func TestParseKeyValues(t *testing.T) {
	t.Parallel()

	params, err := parseKeyValues([]string{"name=Meteora", "description=a=b"})
	require.NoError(t, err)
	require.Equal(t, mailer.Params{"name": "Meteora", "description": "a=b"}, params)

	_, err = parseKeyValues([]string{"name"})
	require.Error(t, err)
}

func TestTemplatesCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "templates")
	require.NoError(t, err)
	require.Contains(t, out, "token_launch")
	require.Contains(t, out, "team_invite")
	require.Contains(t, out, "https://meteora.ag")
	require.Contains(t, out, "(optional)")
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "render", "token_launch", "-p", "name=Jupiter", "-p", "symbol=JUP", "--format", "text")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Mybit Alpha"))
	require.Contains(t, out, "New Token Launch: Jupiter (JUP)")

	out, err = execute(t, "render", "token_launch")
	require.NoError(t, err)
	require.Contains(t, out, "<!DOCTYPE html>")

	_, err = execute(t, "render", "newsletter")
	require.ErrorIs(t, err, mailer.ErrUnknownTemplate)

	_, err = execute(t, "render", "token_launch", "--format", "pdf")
	require.Error(t, err)
}

func TestSendCommand_DryRun(t *testing.T) {
	t.Setenv("MAILER_FROM", "onboarding@resend.dev")
	t.Setenv("LOG_LEVEL", "error")

	out, err := execute(t,
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
		"send", "--dry-run", "-t", "token_launch", "--to", "recipient@example.com",
	)
	require.NoError(t, err)
	require.Contains(t, out, "Email sent successfully. ID: noop_")
}

func TestSendCommand_MissingCredential(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("MAILER_FROM", "onboarding@resend.dev")
	t.Setenv("LOG_LEVEL", "error")

	_, err := execute(t,
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
		"send", "-t", "token_launch", "--to", "recipient@example.com",
	)
	require.ErrorIs(t, err, mailer.ErrMissingCredential)
	require.Contains(t, err.Error(), "RESEND_API_KEY")
}

func TestSendCommand_NoRecipient(t *testing.T) {
	t.Setenv("MAILER_FROM", "onboarding@resend.dev")
	t.Setenv("LOG_LEVEL", "error")

	_, err := execute(t,
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
		"send", "--dry-run", "-t", "token_launch",
	)
	require.ErrorIs(t, err, mailer.ErrNoRecipient)
}
