package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nfsf/pkg/buildinfo"
	"github.com/matzehuels/nfsf/pkg/observability"
	"github.com/matzehuels/nfsf/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for the command and display.
	appName = "nfsf"

	// inputPrompt asks for the description to compile.
	inputPrompt = "Enter the input NFSF file name: "
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds the streams and logger shared by the command.
type CLI struct {
	Logger *log.Logger

	In  io.Reader // file name prompt
	Out io.Writer // prompt and status lines
	Err io.Writer // logs and spinner
}

// New creates a CLI bound to the process streams that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the nfsf command. It takes no positional arguments;
// the input file name is always read from the prompt.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		f       flags
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "nfsf compiles fractal shape descriptions to SVG",
		Long: `nfsf reads an NFSF description of transforms, shapes and recursive
fractal definitions, expands the first fractal into placed shapes and writes
them as polylines to <input>.svg (or .json, .png, .pdf).`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
				observability.SetPipelineHooks(debugHooks{logger: c.Logger})
			}
			c.Logger.Debug("starting", "version", buildinfo.String())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	f.register(root)

	return root
}

// =============================================================================
// Terminal Detection
// =============================================================================

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// =============================================================================
// Options Helpers
// =============================================================================

// outputPaths returns the files a run with opts writes.
func outputPaths(opts pipeline.Options) (artifact, graph string) {
	artifact = pipeline.OutputPath(opts.Input, opts.Format)
	if opts.Graph {
		graph = pipeline.GraphPath(opts.Input)
	}
	return artifact, graph
}
