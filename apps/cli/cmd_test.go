package main

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/user"
	backendsvc "github.com/mentoralabs/mentora/services/backend"
	notifysvc "github.com/mentoralabs/mentora/services/notify"
	inmemstore "github.com/mentoralabs/mentora/storage/session/inmem"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (*commandLine, *strings.Builder) {
	t.Helper()
	conf := &core.Config{AppName: "Mentora"}
	conf.Backend.BaseURL = "http://127.0.0.1:1" // nothing listens here; help paths never dial
	conf.Backend.Timeout = time.Second
	conf.Backend.StreamTimeout = time.Second
	conf.Backend.PollInterval = 10 * time.Millisecond
	conf.Backend.PollBudget = time.Second

	store := inmemstore.NewStore()
	client := backendsvc.NewClient(conf, store, nopLogger{}, nil)

	out := new(strings.Builder)
	cli := &commandLine{
		conf:     conf,
		logger:   nopLogger{},
		notifier: notifysvc.NewConsoleServiceMock(),
		session:  user.NewSession(store, client),
		client:   client,
		watcher:  backendsvc.NewWatcher(client, conf, nopLogger{}),
		out: func(format string, args ...interface{}) {
			fmt.Fprintf(out, format, args...)
		},
	}
	return cli, out
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_help(t *testing.T) {
	tests := []cliTest{
		{name: "no subcommand", args: []string{}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"lol"}, wantErr: errHelp},
		{name: "login: no username", args: []string{"login"}, wantErr: errHelp},
		{name: "oauth: no provider", args: []string{"oauth"}, wantErr: errHelp},
		{name: "show: no course", args: []string{"show"}, wantErr: errHelp},
		{name: "complete: no chapter", args: []string{"complete", "-course", "crs-1"}, wantErr: errHelp},
		{name: "quiz: no course", args: []string{"quiz", "-chapter", "ch-1"}, wantErr: errHelp},
		{name: "upload: no file", args: []string{"upload", "-kind", "document"}, wantErr: errHelp},
		{name: "delete: no course", args: []string{"delete"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := setup(t)
			args := append([]string{"mentora"}, tt.args...)
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_createValidatesBeforeNetwork(t *testing.T) {
	cli, _ := setup(t)

	err := cli.run([]string{"mentora", "create", "-query", "   "})
	if _, ok := err.(*core.ValidationError); !ok {
		t.Fatalf("run(create) error = %v, want *core.ValidationError", err)
	}
}

func Test_commandLine_whoamiLoggedOut(t *testing.T) {
	cli, _ := setup(t)

	if err := cli.run([]string{"mentora", "whoami"}); err != user.ErrNotAuthenticated {
		t.Errorf("run(whoami) error = %v, want %v", err, user.ErrNotAuthenticated)
	}
}

func Test_commandLine_failFormatsFieldErrors(t *testing.T) {
	cli, _ := setup(t)
	notifier := cli.notifier.(interface{ Sent() []notifysvc.Notification })

	cli.fail(core.NewValidationError(nil, core.FieldError{Field: "query", Error: "this field is required"}))

	sent := notifier.Sent()
	if len(sent) != 1 {
		t.Fatalf("len(Sent()) = %d, want 1", len(sent))
	}
	if sent[0].Kind != core.NotifyError || !strings.Contains(sent[0].Message, "query: this field is required") {
		t.Errorf("notification = %+v, want an error naming the query field", sent[0])
	}
}
