package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/framesketch/framesketch/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty defaults to png and svg", input: "", want: []string{"png", "svg"}},
		{name: "single format", input: "svg", want: []string{"svg"}},
		{name: "multiple formats", input: "png,svg,json", want: []string{"png", "svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"png", "svg", "json"}); err != nil {
		t.Errorf("validateFormats() error: %v", err)
	}

	err := validateFormats([]string{"png", "pdf"})
	if err == nil {
		t.Fatal("validateFormats() should reject pdf")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		prompt string
		want   string
	}{
		{name: "empty output slugs the prompt", output: "", prompt: "Simple login form", want: "simple-login-form"},
		{name: "long prompt truncated to four words", output: "", prompt: "analytics dashboard with charts and graphs", want: "analytics-dashboard-with-charts"},
		{name: "output without extension kept", output: "out/mockup", prompt: "x", want: "out/mockup"},
		{name: "known extension stripped", output: "mockup.svg", prompt: "x", want: "mockup"},
		{name: "unknown extension kept", output: "mockup.v2", prompt: "x", want: "mockup.v2"},
		{name: "punctuation-only prompt falls back", output: "", prompt: "!!! ???", want: "wireframe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basePath(tt.output, tt.prompt)
			if got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.prompt, got, tt.want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"generate", "analyze", "templates", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}

	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("log level = %v, want debug", c.Logger.GetLevel())
	}
}
