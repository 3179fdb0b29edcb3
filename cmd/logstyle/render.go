package logstyle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfgame/logstyle/pkg/display"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var (
		block        string
		withKeywords bool
		significance string
		withMask     bool
		pace         bool
		depth        string
	)

	cmd := &cobra.Command{
		Use:     "render [markup...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "style",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			bt, err := types.ParseBlockType(block)
			if err != nil {
				return err
			}

			e, err := opts.loadEngine()
			if err != nil {
				return err
			}

			var writerOpts []display.Option
			if withKeywords {
				writerOpts = append(writerOpts, display.WithKeywords(e.Keywords))
			}
			if significance != "" {
				s, err := types.ParseSignificance(significance)
				if err != nil {
					return err
				}
				writerOpts = append(writerOpts, display.WithSignificance(s))
			}
			if withMask {
				writerOpts = append(writerOpts, display.WithMask(e.NewMask()))
			}
			if pace {
				writerOpts = append(writerOpts, display.WithPacer(e.NewPacer()))
			}
			if depth != "" {
				room, total, err := parseDepth(depth)
				if err != nil {
					return err
				}
				writerOpts = append(writerOpts, display.WithDepth(e.Layer, room, total))
			}

			sink, err := opts.sink(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = ui.Close(sink) }()

			w := e.NewWriter(sink, writerOpts...)
			if err := w.WriteMarkup(cmd.Context(), bt, lines...); err != nil {
				return err
			}
			return ui.Close(sink)
		},
	}

	cmd.Flags().StringVarP(&block, "block", "b", string(types.BlockSystemMessage), MsgFlagBlock)
	cmd.Flags().BoolVarP(&withKeywords, "keywords", "k", false, MsgFlagKeywords)
	cmd.Flags().StringVarP(&significance, "significance", "s", "", MsgFlagSignificance)
	cmd.Flags().BoolVarP(&withMask, "mask", "m", false, MsgFlagMask)
	cmd.Flags().BoolVar(&pace, "pace", false, MsgFlagPace)
	cmd.Flags().StringVar(&depth, "depth", "", MsgFlagDepth)

	return cmd
}

// parseDepth reads "room/total", e.g. "3/10"
func parseDepth(s string) (int, int, error) {
	r, t, ok := strings.Cut(s, "/")
	room, errRoom := strconv.Atoi(strings.TrimSpace(r))
	total, errTotal := strconv.Atoi(strings.TrimSpace(t))
	if !ok || errRoom != nil || errTotal != nil || room < 1 || total < 1 || room > total {
		return 0, 0, errors.Newf(errors.ErrInvalidInput, MsgInvalidDepth, s)
	}
	return room, total, nil
}

func newStripCmd(opts *globalOptions) *cobra.Command {
	var length bool

	cmd := &cobra.Command{
		Use:     "strip [markup...]",
		Short:   MsgStripShort,
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

			out := cmd.OutOrStdout()
			for _, l := range lines {
				var err error
				if length {
					_, err = fmt.Fprintln(out, e.Parser.DisplayLength(l))
				} else {
					_, err = fmt.Fprintln(out, e.Parser.Strip(l))
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&length, "length", "l", false, MsgFlagLength)
	return cmd
}
