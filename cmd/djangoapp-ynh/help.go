package djangoapp

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/artus40/djangoapp-ynh/pkg/cobrax/topics"
	"github.com/artus40/djangoapp-ynh/pkg/logging"
)

//go:embed topics
var topicFiles embed.FS

func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		var m *topics.Manager
		if m, err = topics.Load(sub, topics.Options{Renderer: topics.NewGlamourRenderer()}); err == nil {
			m.Install(rootCmd)
			return
		}
	}
	logger := logging.GetLogger("cli")
	logger.Warn().Err(err).Msg("Help topics unavailable")
}

func newManCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{Title: "DJANGOAPP-YNH", Section: "1"}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", filepath.Clean(dir))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}
