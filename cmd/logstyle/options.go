package logstyle

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/engine"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/ui"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configPath string
	sets       []string
	format     string
}

// loadOptions turns the flags into configuration loading options
func (o *globalOptions) loadOptions() (config.Options, error) {
	opts := config.Options{Path: o.configPath}
	if len(o.sets) == 0 {
		return opts, nil
	}
	opts.Overrides = make(map[string]interface{}, len(o.sets))
	for _, s := range o.sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return opts, errors.Newf(errors.ErrInvalidInput, MsgInvalidSet, s)
		}
		opts.Overrides[key] = strings.TrimSpace(value)
	}
	return opts, nil
}

// loadEngine builds the engine for a command. Configuration problems fall
// back to the built-in tables; only malformed flags are errors.
func (o *globalOptions) loadEngine() (*engine.Engine, error) {
	opts, err := o.loadOptions()
	if err != nil {
		return nil, err
	}
	return engine.Load(opts), nil
}

// sink opens the selected output sink on the command's stdout
func (o *globalOptions) sink(cmd *cobra.Command) (ui.Sink, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewSink(format, cmd.OutOrStdout())
}

// inputLines returns the arguments, or the lines of stdin when there are
// none
func inputLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return nil, errors.New(errors.ErrInvalidInput, MsgNoInput)
	}
	lines, err := readLines(in)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, MsgNoInput)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read input")
	}
	return lines, nil
}
