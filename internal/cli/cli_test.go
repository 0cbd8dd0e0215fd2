package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/fractal"
	"github.com/matzehuels/nfsf/pkg/observability"
	"github.com/matzehuels/nfsf/pkg/pipeline"
)

const selfTree = `TRANSFORM half ROTATION 0 TRANSLATION (0,1) SCALE 0.5

GRAPHIC stem
0,0
0,1

FRACTAL tree
BRANCH - [0:1] GRAPHIC stem
BRANCH half [0.1:1] FRACTAL tree
`

// newTestCLI returns a CLI that reads answer from the prompt and captures
// its output and logs.
func newTestCLI(answer string) (c *CLI, out, logs *bytes.Buffer) {
	out, logs = &bytes.Buffer{}, &bytes.Buffer{}
	return &CLI{
		Logger: newLogger(logs, log.InfoLevel),
		In:     strings.NewReader(answer),
		Out:    out,
		Err:    logs,
	}, out, logs
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.nfsf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(c.Out)
	root.SetErr(c.Err)
	return root.ExecuteContext(context.Background())
}

func TestRootCommand_WritesSVG(t *testing.T) {
	input := writeInput(t, selfTree)
	c, out, logs := newTestCLI(input + "\n")

	if err := execute(c); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(input + ".svg")
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Errorf("output is not an SVG document:\n%s", data)
	}
	if n := strings.Count(string(data), "<polyline"); n != 1 {
		t.Errorf("polylines = %d, want 1 under the strict policy", n)
	}

	if !strings.HasPrefix(out.String(), inputPrompt) {
		t.Errorf("stdout should start with the prompt, got %q", out.String())
	}
	if !strings.Contains(out.String(), input+".svg") {
		t.Errorf("stdout should name the output file, got %q", out.String())
	}
	for _, stage := range []string{"parsed input", "expanded fractal", "rendered output"} {
		if !strings.Contains(logs.String(), stage) {
			t.Errorf("logs missing %q:\n%s", stage, logs.String())
		}
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	c, out, _ := newTestCLI("unused\n")
	if err := execute(c, "tree.nfsf"); err == nil {
		t.Fatal("positional argument should be rejected")
	}
	if strings.Contains(out.String(), inputPrompt) {
		t.Error("prompt should not be shown for a usage error")
	}
}

func TestRootCommand_Flags(t *testing.T) {
	input := writeInput(t, selfTree)
	c, _, _ := newTestCLI(input + "\n")

	err := execute(c, "--format", "json", "--policy", "bounded", "--width", "320", "--height", "200")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(input + ".json")
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	var got struct {
		Width     int               `json:"width"`
		Height    int               `json:"height"`
		Polylines []json.RawMessage `json:"polylines"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Width != 320 || got.Height != 200 {
		t.Errorf("canvas = %dx%d, want 320x200", got.Width, got.Height)
	}
	if len(got.Polylines) != 4 {
		t.Errorf("polylines = %d, want 4 under the bounded policy", len(got.Polylines))
	}
	if _, err := os.Stat(input + ".svg"); !os.IsNotExist(err) {
		t.Error("svg output should not be written for --format json")
	}
}

func TestRootCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		code    errors.Code
	}{
		{
			name:    "unknown shape",
			content: "FRACTAL f\nBRANCH - [0:1] GRAPHIC ghost\n",
			code:    errors.ErrCodeUnknownReference,
		},
		{
			name:    "syntax",
			content: "CIRCLE c\n",
			code:    errors.ErrCodeParse,
		},
		{
			name:    "bad format",
			content: selfTree,
			args:    []string{"--format", "gif"},
			code:    errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeInput(t, tt.content)
			c, _, _ := newTestCLI(input + "\n")

			err := execute(c, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
			entries, _ := os.ReadDir(filepath.Dir(input))
			if len(entries) != 1 {
				t.Errorf("no output should be written, dir has %d entries", len(entries))
			}
		})
	}
}

func TestRootCommand_MissingInputFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.nfsf")
	c, _, _ := newTestCLI(missing + "\n")

	err := execute(c)
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Fatalf("err = %v, want IO_ERROR", err)
	}
	if _, statErr := os.Stat(missing + ".svg"); !os.IsNotExist(statErr) {
		t.Error("no output should be written for a missing input")
	}
}

func TestFlagsOptions_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "nfsf.toml")
	content := "policy = \"bounded\"\nmax_depth = 5\n\n[render]\nstroke = \"navy\"\nwidth = 100\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var f flags
	cmd := &cobra.Command{Use: appName}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--config", cfg, "--max-depth", "7"}); err != nil {
		t.Fatal(err)
	}
	opts, err := f.options(cmd)
	if err != nil {
		t.Fatalf("options: %v", err)
	}

	if opts.MaxDepth != 7 {
		t.Errorf("MaxDepth = %d, flag should win over config", opts.MaxDepth)
	}
	if opts.Policy != fractal.PolicyBounded {
		t.Errorf("Policy = %q, config should win over default", opts.Policy)
	}
	if opts.Stroke != "navy" || opts.Width != 100 {
		t.Errorf("render options = %q %d, want navy 100", opts.Stroke, opts.Width)
	}
	if opts.Height != pipeline.DefaultHeight {
		t.Errorf("Height = %d, want default %d", opts.Height, pipeline.DefaultHeight)
	}
}

func TestOutputPaths(t *testing.T) {
	art, graph := outputPaths(pipeline.Options{Input: "a.nfsf", Format: "png"})
	if art != "a.nfsf.png" || graph != "" {
		t.Errorf("outputPaths() = %q, %q", art, graph)
	}
	art, graph = outputPaths(pipeline.Options{Input: "a.nfsf", Format: "svg", Graph: true})
	if art != "a.nfsf.svg" || graph != "a.nfsf.graph.svg" {
		t.Errorf("outputPaths() with graph = %q, %q", art, graph)
	}
}

func TestRootCommand_VerboseTracesStages(t *testing.T) {
	t.Cleanup(observability.Reset)

	input := writeInput(t, selfTree)
	c, _, logs := newTestCLI(input + "\n")

	if err := execute(c, "--verbose"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, line := range []string{"parse started", "expand finished", "render finished"} {
		if !strings.Contains(logs.String(), line) {
			t.Errorf("verbose logs missing %q:\n%s", line, logs.String())
		}
	}
}
