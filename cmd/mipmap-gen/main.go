// mipmap-gen generates the Android launcher icons of every screen density.
//
// Usage:
//
//	mipmap-gen [--source/-s <image|url>] [--output/-o <dir>] [--quality/-q <1-100>] [--no-fallback]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/registrohoras/mipmap"
	"github.com/registrohoras/mipmap/config"
	"github.com/registrohoras/mipmap/utils"
	"github.com/spf13/cobra"
)

const helpBanner = `Android Launcher Icon Generator
    Version: %s

`

// Version indicates the current build version.
var Version = "dev"

// errIncomplete is returned when the source image could not be used and falling back is disabled.
var errIncomplete = errors.New("no icons generated")

type genFlags struct {
	source     string
	output     string
	quality    float32
	noFallback bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
	if err := utils.InitLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}

	cmd := newRootCmd(cfg, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	var flags genFlags

	cmd := &cobra.Command{
		Use:           "mipmap-gen",
		Short:         "Generate Android launcher icons in WebP format",
		Long:          fmt.Sprintf(helpBanner, Version) + "Generates ic_launcher.webp and ic_launcher_round.webp for the mdpi, hdpi, xhdpi, xxhdpi and xxxhdpi densities.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runGenerate(cfg, flags, stdout, stderr)
			if err != nil {
				fmt.Fprintln(stderr, utils.DecoratorFor(stderr)("Error generating the icons: "+err.Error(), utils.ErrorMessage))
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.source, "source", "s", "", "Source image file or URL (PNG, JPG, GIF, BMP, WebP)")
	f.StringVarP(&flags.output, "output", "o", cfg.Output, "Output directory")
	f.Float32VarP(&flags.quality, "quality", "q", cfg.Quality, "WebP quality")
	f.BoolVar(&flags.noFallback, "no-fallback", false, "Do not generate the default icons when the source image cannot be read")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runGenerate(cfg *config.Config, flags genFlags, stdout, stderr io.Writer) error {
	if flags.quality <= 0 || flags.quality > 100 {
		return fmt.Errorf("quality must be in the (0, 100] range, got %v", flags.quality)
	}
	decorate := utils.DecoratorFor(stdout)

	fmt.Fprintln(stdout, decorate("Android Launcher Icon Generator", utils.StatusMessage))
	fmt.Fprintln(stdout, "========================================")
	fmt.Fprintf(stdout, "Output directory: %s\n", flags.output)

	gen := mipmap.NewGenerator(flags.quality)
	gen.Logger = utils.NewLogger("generator")
	gen.NoFallback = flags.noFallback
	gen.DownloadTimeout = cfg.DownloadTimeout

	var spinner *utils.Spinner
	if utils.IsTerminal(stderr) {
		spinner = utils.NewSpinner(stderr, decorate("Generating icons...", utils.DefaultMessage), 80*time.Millisecond, true)
	}
	gen.OnWrite = func(f mipmap.File) {
		if spinner != nil {
			spinner.Stop()
		}
		size := f.Artifact.Density.Size
		fmt.Fprintf(stdout, "Generated: %s (%dx%d)\n", f.Path, size, size)
		if spinner != nil {
			spinner.Start()
		}
	}

	now := time.Now()
	if spinner != nil {
		spinner.Start()
	}
	res, err := gen.Generate(flags.source, flags.output)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%w: %w", errIncomplete, res.Err)
	}

	fmt.Fprintln(stdout, decorate("\nIcon generation complete!", utils.SuccessMessage))
	fmt.Fprintln(stdout, "\nGenerated icon sizes:")
	for _, d := range mipmap.Densities() {
		fmt.Fprintf(stdout, "  %-8s: %dx%d pixels\n", d.Name, d.Size, d.Size)
	}
	fmt.Fprintf(stdout, "\nExecution time: %s\n", utils.FormatTime(time.Since(now)))

	return nil
}
