package cli

import (
	"context"

	"github.com/matzehuels/nfsf/pkg/errors"
	pkgio "github.com/matzehuels/nfsf/pkg/io"
	"github.com/matzehuels/nfsf/pkg/pipeline"
)

// run prompts for the input file, compiles it and writes the results next
// to it. Nothing is written unless every stage succeeds.
func (c *CLI) run(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	input, err := c.promptInput(ctx)
	if err != nil {
		return err
	}
	opts.Input = input
	opts.Logger = logger

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	artifact, graph := outputPaths(opts)
	if err := errors.ValidateOutputPath(artifact); err != nil {
		return err
	}

	prog := newProgress(logger)
	var spin *Spinner
	if isTerminal(c.Err) {
		spin = newSpinner(ctx, c.Err, "Compiling "+opts.Input+"...")
		spin.Start()
	}

	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := pkgio.WriteFile(artifact, result.Artifact, 0o644); err != nil {
		return err
	}
	if graph != "" {
		if err := pkgio.WriteFile(graph, result.Graph, 0o644); err != nil {
			return err
		}
	}
	prog.done("compiled " + opts.Input)

	printSuccess(c.Out, "Rendered %s", StyleHighlight.Render(artifact))
	if graph != "" {
		printFile(c.Out, graph)
	}
	printStats(c.Out, result.Stats)
	return nil
}
