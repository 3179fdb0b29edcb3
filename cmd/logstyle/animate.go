package logstyle

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfgame/logstyle/pkg/coloredtext"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/logging"
	"github.com/dfgame/logstyle/pkg/markup"
	"github.com/dfgame/logstyle/pkg/mask"
	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui"
)

func newAnimateCmd(opts *globalOptions) *cobra.Command {
	var (
		frames   int
		interval time.Duration
		template string
	)

	cmd := &cobra.Command{
		Use:     "animate [text...]",
		Short:   MsgAnimateShort,
		Long:    MsgAnimateLong,
		GroupID: "style",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			if frames < 1 {
				return errors.Newf(errors.ErrInvalidInput, "--frames must be at least 1, got %d", frames)
			}

			e, err := opts.loadEngine()
			if err != nil {
				return err
			}
			if template != "" && !e.Templates.Has(template) {
				return errors.Newf(errors.ErrNotFound, "unknown template %q", template).
					WithDetail("template", template)
			}
			if interval <= 0 {
				interval = time.Duration(e.Config.Mask.IntervalMS) * time.Millisecond
			}
			if interval <= 0 {
				interval = 100 * time.Millisecond
			}

			sink, err := opts.sink(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = ui.Close(sink) }()

			a := &animation{
				mask:     e.NewMask(),
				text:     strings.Join(lines, " "),
				template: template,
				frames:   frames,
				interval: interval,
			}
			if err := a.run(cmd.Context(), sink, e.Parser); err != nil {
				return err
			}
			return ui.Close(sink)
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 20, MsgFlagFrames)
	cmd.Flags().DurationVar(&interval, "interval", 0, MsgFlagInterval)
	cmd.Flags().StringVarP(&template, "template", "t", "", MsgFlagTemplate)
	return cmd
}

// animation draws one line per frame while the mask drifts underneath it
type animation struct {
	mask     *mask.Mask
	text     string
	template string
	frames   int
	interval time.Duration
}

func (a *animation) run(ctx context.Context, sink ui.Sink, parser *markup.Parser) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.GetLogger("animate")
	done := logging.LogOperationStart(logger, "animate")
	defer done()

	stop := mask.NewAnimator(a.mask, a.interval, nil).Start(ctx)
	defer stop()

	var ct coloredtext.ColoredText
	if a.template != "" {
		ct = coloredtext.FromTemplate(a.text, a.template, true).WithMask(a.mask, 0)
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for frame := 0; frame < a.frames; frame++ {
		var segs []types.Segment
		if a.template != "" {
			segs = ct.Segments(parser)
			ct.AdvanceUndulation(parser.Templates())
		} else {
			segs = a.mask.ApplyToSegments(parser.Parse(a.text), 0)
		}
		if err := sink.RenderLine(segs); err != nil {
			return err
		}
		logger.Trace().Int("frame", frame).Int64("offset", a.mask.Offset()).Msg("Frame drawn")

		if frame == a.frames-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
