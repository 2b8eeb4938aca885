package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/df07/go-raycaster/internal/cli"
	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

func main() {
	if err := newRootCmd(log.New(os.Stderr, "", log.LstdFlags)).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each tree has its own viper instance.
func newRootCmd(logger core.Logger) *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "raycaster",
		Short:        "Ray caster for triangles, spheres and planes",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")

	loadConfig := func() (*config.Config, error) {
		return config.Load(v, cfgFile)
	}

	root.AddCommand(
		newRenderCmd(v, loadConfig, logger),
		cli.NewServeCmd(v, loadConfig, logger),
		newScenesCmd(v, loadConfig),
	)
	return root
}

func newRenderCmd(v *viper.Viper, loadConfig cli.ConfigLoader, logger core.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to output/<scene>/render_<timestamp>.png",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			filename, err := renderToFile(ctx, cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Render saved as %s\n", filename)
			return nil
		},
	}

	d := config.DefaultConfig()
	flags := cmd.Flags()
	flags.String("scene", d.Scene.Name, "built-in scene: "+fmt.Sprint(scene.Names()))
	flags.String("scene-file", "", "YAML scene file, overrides --scene")
	flags.Int("width", d.Render.Width, "image width in pixels")
	flags.Int("height", d.Render.Height, "image height in pixels")
	flags.Int("workers", d.Render.Workers, "parallel tiles, 0 for one per CPU")
	flags.Int("tile-size", d.Render.TileSize, "tile edge length in pixels")
	flags.String("output", d.Output.Dir, "output directory")

	cli.BindFlags(v, cmd, map[string]string{
		"scene.name":       "scene",
		"scene.file":       "scene-file",
		"render.width":     "width",
		"render.height":    "height",
		"render.workers":   "workers",
		"render.tile_size": "tile-size",
		"output.dir":       "output",
	})
	return cmd
}

func newScenesCmd(v *viper.Viper, loadConfig cli.ConfigLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes and scene files by group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			response, err := scene.ListAllScenes(cfg.Scene.Dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, group := range response.Groups {
				fmt.Fprintf(out, "%s:\n", group.Name)
				for _, info := range group.Scenes {
					fmt.Fprintf(out, "  %-20s %s\n", info.ID, info.DisplayName)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("scene-dir", config.DefaultConfig().Scene.Dir, "directory of YAML scene files")
	cli.BindFlags(v, cmd, map[string]string{"scene.dir": "scene-dir"})
	return cmd
}

// createScene returns the scene selected by the configuration
func createScene(cfg *config.Config, logger core.Logger) (*scene.Scene, error) {
	if cfg.Scene.File != "" {
		return loaders.LoadSceneFile(cfg.Scene.File, logger)
	}

	s, ok := scene.Lookup(cfg.Scene.Name)
	if !ok {
		return nil, errors.Errorf("unknown scene %q, available: %v", cfg.Scene.Name, scene.Names())
	}
	return s, nil
}

// renderToFile renders the configured scene and saves it as a PNG
func renderToFile(ctx context.Context, cfg *config.Config, logger core.Logger) (string, error) {
	s, err := createScene(cfg, logger)
	if err != nil {
		return "", err
	}

	raytracer := renderer.NewRaytracer(s, cfg.Render.Width, cfg.Render.Height)
	raytracer.SetWorkers(cfg.Render.Workers)
	raytracer.SetTileSize(cfg.Render.TileSize)
	raytracer.SetLogger(logger)

	img, _, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}

	return savePNG(img, cfg.Output.Dir, s.Name, time.Now())
}

// savePNG writes img to <dir>/<sceneName>/render_<timestamp>.png
func savePNG(img image.Image, dir, sceneName string, at time.Time) (string, error) {
	outputDir := filepath.Join(dir, sceneDirName(sceneName))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", errors.Wrap(err, "error creating output directory")
	}

	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", at.Format("20060102_150405")))
	file, err := os.Create(filename)
	if err != nil {
		return "", errors.Wrap(err, "error creating file")
	}

	if err := encodePNG(file, img); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", errors.Wrap(err, "error closing file")
	}
	return filename, nil
}

// sceneDirName keeps the per-scene output directory inside the output root
func sceneDirName(sceneName string) string {
	name := filepath.Base(sceneName)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "scene"
	}
	return name
}

func encodePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "error saving PNG")
}
