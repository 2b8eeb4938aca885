// Package cli holds the cobra commands shared by the raycaster binaries.
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/web/server"
)

// ConfigLoader loads the configuration once flags have been bound
type ConfigLoader func() (*config.Config, error)

// NewServeCmd returns the command that starts the HTTP render server
func NewServeCmd(v *viper.Viper, loadConfig ConfigLoader, logger core.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP render server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger.Printf("Visit http://localhost:%d/api/scenes to list scenes\n", cfg.Server.Port)
			return server.NewServer(cfg, logger).Start()
		},
	}

	d := config.DefaultConfig()
	cmd.Flags().Int("port", d.Server.Port, "port to serve on")
	cmd.Flags().Int("workers", d.Render.Workers, "parallel tiles per render, 0 for one per CPU")
	cmd.Flags().String("scene-dir", d.Scene.Dir, "directory of YAML scene files served as file:<name>")
	BindFlags(v, cmd, map[string]string{
		"server.port":    "port",
		"render.workers": "workers",
		"scene.dir":      "scene-dir",
	})
	return cmd
}

// BindFlags binds viper keys to flags of cmd. Bindings are made when cmd
// runs so that commands sharing a key do not overwrite each other.
func BindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		for key, name := range keys {
			if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return errors.Wrapf(err, "bind flag %s", name)
			}
		}
		return nil
	}
}
