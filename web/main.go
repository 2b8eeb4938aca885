package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/df07/go-raycaster/internal/cli"
	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
)

func main() {
	if err := newServerCmd(log.New(os.Stderr, "", log.LstdFlags)).Execute(); err != nil {
		os.Exit(1)
	}
}

// newServerCmd runs the render server as a standalone binary
func newServerCmd(logger core.Logger) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := cli.NewServeCmd(v, func() (*config.Config, error) {
		return config.Load(v, cfgFile)
	}, logger)
	cmd.Use = "raycaster-web"
	cmd.Short = "Raycaster web server"
	cmd.SilenceUsage = true
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	return cmd
}
