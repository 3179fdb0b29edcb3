package logstyle

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfgame/logstyle/pkg/errors"
)

func newKeywordsCmd(opts *globalOptions) *cobra.Command {
	var (
		groups []string
		names  []string
	)

	cmd := &cobra.Command{
		Use:     "keywords [text...]",
		Short:   MsgKeywordsShort,
		Long:    MsgKeywordsLong,
		GroupID: "style",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			e, err := opts.loadEngine()
			if err != nil {
				return err
			}

			for _, n := range names {
				name, pattern, ok := strings.Cut(n, "=")
				if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(pattern) == "" {
					return errors.Newf(errors.ErrInvalidInput, MsgInvalidName, n)
				}
				if err := e.Keywords.RegisterName(name, strings.TrimSpace(pattern)); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, l := range lines {
				if _, err := fmt.Fprintln(out, e.Keywords.Colorize(l, groups...)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&groups, "group", "g", nil, MsgFlagGroups)
	cmd.Flags().StringArrayVarP(&names, "name", "n", nil, MsgFlagNames)
	return cmd
}
