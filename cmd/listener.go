package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"ttrpg-pi/core/hal"
	"ttrpg-pi/feature/buttons"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listenerCmd represents the run-listener command
var listenerCmd = &cobra.Command{
	Use:   "run-listener",
	Short: "Watch the GPIO buttons and forward presses to the API",
	Long: `Watches the configured GPIO pins and calls GET <api_url>/<n> on every press.
Runs independently of the API server; failed requests are logged and dropped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := hal.Init(); err != nil {
			return err
		}

		pins, err := buttons.OpenPins(cfg.Listener.Pins, hal.OpenButton, logg)
		if err != nil {
			return err
		}

		apiURL := cfg.ListenerURL()
		client := buttons.NewClient(apiURL, time.Duration(cfg.Listener.TimeoutSeconds)*time.Second)
		l := buttons.NewListener(pins, client, cfg.Listener, logg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logg.Info("Button listener started", zap.Ints("buttons", l.Buttons()), zap.String("api_url", apiURL))
		err = l.Run(ctx)
		logg.Info("Button listener stopped")
		return err
	},
}

func init() {
	RootCmd.AddCommand(listenerCmd)
}
