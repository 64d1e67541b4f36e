package djangoapp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
)

func newGenConfigCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GetDefaultConfigContent()
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			path := config.UserConfigPath()
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, "%s already exists", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(path))
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
