package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/nfsf/pkg/errors"
)

// promptInput asks for the input file name. On a terminal it runs an
// editable text field; otherwise it reads one line from c.In.
func (c *CLI) promptInput(ctx context.Context) (string, error) {
	var (
		name string
		err  error
	)
	if isTerminal(c.In) && isTerminal(c.Out) {
		name, err = promptTUI(ctx, c.In, c.Out)
	} else {
		name, err = promptLine(c.In, c.Out)
	}
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "input file name is required")
	}
	return name, nil
}

// promptLine writes the prompt and reads one line. A final line without a
// newline is accepted.
func promptLine(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, inputPrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.ErrCodeIO, err, "read input file name")
	}
	if err == io.EOF && line == "" {
		fmt.Fprintln(out)
		return "", errors.New(errors.ErrCodeUsage, "no input file name given")
	}
	return strings.TrimSpace(line), nil
}

// promptTUI runs the interactive prompt until the user confirms or cancels.
func promptTUI(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(newPromptModel(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "prompt")
	}

	m := final.(promptModel)
	if m.canceled {
		return "", context.Canceled
	}
	return m.value, nil
}

// =============================================================================
// promptModel - Interactive file name input
// =============================================================================

// promptModel is the bubbletea model behind promptTUI.
type promptModel struct {
	input    textinput.Model
	value    string
	done     bool
	canceled bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Prompt = inputPrompt
	ti.PromptStyle = StyleTitle
	ti.TextStyle = StyleValue
	ti.Placeholder = "tree.nfsf"
	ti.PlaceholderStyle = StyleDim
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return inputPrompt + m.value + "\n"
	}
	if m.canceled {
		return ""
	}
	return m.input.View() + "\n" + StyleDim.Render("enter to confirm · esc to cancel") + "\n"
}
