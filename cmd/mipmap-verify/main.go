// mipmap-verify checks that the Android launcher icons exist and are properly sized.
// It must be run from the project root directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/registrohoras/mipmap"
	"github.com/registrohoras/mipmap/config"
	"github.com/registrohoras/mipmap/utils"
	"github.com/spf13/cobra"
)

// errVerification is returned when at least one icon failed the verification.
var errVerification = errors.New("icon verification failed")

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

	if err := newRootCmd(cfg, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, stdout io.Writer) *cobra.Command {
	strict := cfg.Strict

	cmd := &cobra.Command{
		Use:           "mipmap-verify",
		Short:         "Verify the Android launcher icons exist and are properly sized",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cfg, strict, stdout)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", strict, "Fail the verification on dimension mismatches")
	cmd.SetOut(stdout)

	return cmd
}

func runVerify(cfg *config.Config, strict bool, stdout io.Writer) error {
	decorate := utils.DecoratorFor(stdout)

	if err := mipmap.CheckRoot(cfg.RootMarker); err != nil {
		fmt.Fprintln(stdout, decorate(fmt.Sprintf("❌ Error: Not in the project root directory (%s not found)", cfg.RootMarker), utils.ErrorMessage))
		fmt.Fprintln(stdout, "Please run this command from the project root directory.")
		return err
	}

	log := utils.NewLogger("verifier")
	v := mipmap.NewVerifier(strict)
	rep := v.Verify(cfg.ResPath)
	rep.Print(stdout, decorate)

	for _, e := range rep.Failures() {
		log.Debug("icon failed verification", "path", e.Path, "status", e.Status.String(), "detail", e.Detail)
	}
	if rep.Passed() {
		return nil
	}

	fmt.Fprintln(stdout, "\n💡 To regenerate missing icons, run:")
	fmt.Fprintf(stdout, "   mipmap-gen --output %s\n", cfg.ResPath)

	return errVerification
}
