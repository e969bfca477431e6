package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	loginErr error

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) ListUsers(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}
func (f *fakeExec) ShowSettings(ctx context.Context) error {
	f.calls = append(f.calls, "settings")
	return nil
}
func (f *fakeExec) SetTitle(ctx context.Context, title string) error {
	f.calls = append(f.calls, "set-title")
	f.arg = title
	return nil
}
func (f *fakeExec) SetLogo(ctx context.Context, logoURL string) error {
	f.calls = append(f.calls, "set-logo")
	f.arg = logoURL
	return nil
}

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrint(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"whoami",
		"users",
		"refresh",
		"settings",
		"logout",
		"foobar",
		"exit",
		"whoami",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "whoami", "users", "refresh", "settings", "logout"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range wantOrder {
		if exec.calls[i] != c {
			t.Fatalf("commands order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}
}

func TestRunREPL_ArgumentsKeepSpaces(t *testing.T) {
	capturePrint(t)

	input := strings.NewReader("set-title   Chemistry Lab 2  \nquit\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if exec.arg != "Chemistry Lab 2" {
		t.Fatalf("arg: got %q", exec.arg)
	}
}

func TestRunREPL_SetLogoWithoutArgument(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{arg: "sentinel"}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("set-logo\n")))

	if len(exec.calls) != 1 || exec.calls[0] != "set-logo" || exec.arg != "" {
		t.Fatalf("unexpected: calls=%v arg=%q", exec.calls, exec.arg)
	}
}

func TestRunREPL_PrintsErrorsVerbatim(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{loginErr: errors.New("Your account is pending approval")}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("login\n")))

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Your account is pending approval") {
			found = true
		}
	}
	if !found {
		t.Fatalf("error message not printed: %v", *lines)
	}
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("\n   \n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
