package logstyle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/errors"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}
	cmd.AddCommand(newConfigDumpCmd(opts))
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigDumpCmd(opts *globalOptions) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: MsgConfigDumpShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.loadEngine()
			if err != nil {
				return err
			}
			out, err := config.Marshal(e.Config, as)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&as, "as", "toml", MsgFlagDumpFormat)
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				p, err := xdg.ConfigFile("logstyle/config.toml")
				if err != nil {
					return errors.Wrap(err, errors.ErrConfigLoad, "failed to resolve config directory")
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgConfigExists, path).WithDetail("path", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", filepath.Dir(path))
			}
			if err := os.WriteFile(path, []byte(config.GenerateConfigContent()), 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", path)
			}

			pterm.Success.WithWriter(cmd.OutOrStdout()).Println(fmt.Sprintf(MsgConfigWritten, path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Where to write the file (default: $XDG_CONFIG_HOME/logstyle/config.toml)")
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
