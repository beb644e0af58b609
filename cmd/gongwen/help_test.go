package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	out := buf.String()
	for _, want := range []string{"convert", "doctor", "version", "help"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage output missing command %q", want)
		}
	}
}

func TestPrintConvertUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printConvertUsage(&buf)

	out := buf.String()
	for _, want := range []string{"--output", "--workers", "--title", "--recipients", "--signer", "--date", "--attachment"} {
		if !strings.Contains(out, want) {
			t.Errorf("convert usage missing flag %q", want)
		}
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args shows usage", nil, "Usage: gongwen <command>"},
		{"convert help", []string{"convert"}, "Usage: gongwen convert"},
		{"doctor help", []string{"doctor"}, "Usage: gongwen doctor"},
		{"version help", []string{"version"}, "Usage: gongwen version"},
		{"help help", []string{"help"}, "Usage: gongwen help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv()
			runHelp(tt.args, env)

			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("runHelp(%v) output %q missing %q", tt.args, stdout.String(), tt.want)
			}
		})
	}
}

func TestRunHelpUnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	runHelp([]string{"bogus"}, env)

	if !strings.Contains(stderr.String(), "Unknown command: bogus") {
		t.Errorf("stderr = %q, missing unknown command message", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	code := run(context.Background(), []string{"version"}, env)

	if code != ExitSuccess {
		t.Errorf("run(version) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "gongwen") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	code := run(context.Background(), []string{"bogus"}, env)

	if code != ExitUsage {
		t.Errorf("run(bogus) = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "Unknown command") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunNoArgs(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	code := run(context.Background(), nil, env)

	if code != ExitUsage {
		t.Errorf("run() = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
