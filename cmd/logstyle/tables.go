package logstyle

import (
	"bytes"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dfgame/logstyle/pkg/types"
	"github.com/dfgame/logstyle/pkg/ui/console"
)

// sampleRenderer renders segments inline for table cells, in color only
// when the command writes to a terminal
type sampleRenderer struct {
	profile termenv.Profile
}

func newSampleRenderer(cmd *cobra.Command) sampleRenderer {
	if isTerminal(cmd.OutOrStdout()) {
		return sampleRenderer{profile: termenv.TrueColor}
	}
	return sampleRenderer{profile: termenv.Ascii}
}

func (r sampleRenderer) render(segs []types.Segment) string {
	var buf bytes.Buffer
	_ = console.New(&buf, r.profile).RenderLine(segs)
	return strings.TrimSuffix(buf.String(), "\n")
}

func newTemplatesCmd(opts *globalOptions) *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.loadEngine()
			if err != nil {
				return err
			}
			r := newSampleRenderer(cmd)

			rows := [][]string{{"Name", "Shader", "Colors", "Sample"}}
			for _, name := range e.Templates.Names() {
				t, _ := e.Templates.Get(name)
				text := sample
				if text == "" {
					text = t.Name
				}
				rows = append(rows, []string{
					t.Name,
					t.Kind.String(),
					string(t.Codes),
					r.render(t.Segments(text, 0, e.Palette)),
				})
			}
			return renderTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "", MsgFlagSample)
	return cmd
}

func newPaletteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "palette",
		Short:   MsgPaletteShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.loadEngine()
			if err != nil {
				return err
			}
			r := newSampleRenderer(cmd)

			rows := [][]string{{"Code", "Name", "Hex", "Sample"}}
			for _, entry := range e.Palette.Entries() {
				name := entry.Name
				switch entry.Code {
				case e.Palette.DefaultForegroundCode():
					name += " (default fg)"
				case e.Palette.DefaultBackgroundCode():
					name += " (default bg)"
				}
				rows = append(rows, []string{
					string(entry.Code),
					name,
					entry.Color.Hex(),
					r.render([]types.Segment{{Text: "&" + string(entry.Code), Fg: types.Color(entry.Color)}}),
				})
			}
			return renderTable(cmd.OutOrStdout(), rows)
		},
	}
}
