package logstyle

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dfgame/logstyle/pkg/spacing"
	"github.com/dfgame/logstyle/pkg/types"
)

func newSpacingCmd(opts *globalOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "spacing [block-type...]",
		Short:   MsgSpacingShort,
		Long:    MsgSpacingLong,
		Example: "  logstyle spacing CombatAction CombatAction Narrative",
		GroupID: "inspect",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := make([]string, len(types.AllBlockTypes))
			for i, bt := range types.AllBlockTypes {
				names[i] = string(bt)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.loadEngine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if check {
				for _, t := range e.Rules.Validate() {
					pterm.Warning.WithWriter(out).Printfln("no rule for %s", t)
				}
			}
			if len(args) == 0 {
				return nil
			}

			tracker := spacing.NewTracker(e.Rules)
			rows := [][]string{{"Block", "Blank lines before"}}
			for _, a := range args {
				bt, err := types.ParseBlockType(a)
				if err != nil {
					return err
				}
				label := bt.String()
				if e.Rules.IsAttached(bt) {
					label += " (attached)"
				}
				rows = append(rows, []string{label, strconv.Itoa(tracker.Next(bt))})
			}
			return renderTable(out, rows)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Warn about important transitions without a rule")
	return cmd
}
