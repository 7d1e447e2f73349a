package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"ttrpg-pi/core/browser"
	"ttrpg-pi/core/loader"
	"ttrpg-pi/core/player"
	"ttrpg-pi/core/process"
	"ttrpg-pi/core/server"
	"ttrpg-pi/feature/sound"
	"ttrpg-pi/feature/system"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ttrpg-pi/docs/swagger"
)

// @title TTRPG Pi API
// @version 1.0
// @description Plays sound effects on a Raspberry Pi kiosk.
// @host localhost:5000
// @BasePath /

var noBrowser bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the kiosk browser and start the API server",
	Long:  `Opens the configured website full screen, then serves the sound API until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		runner := process.NewExecRunner(logg)

		// The API comes up whatever happens to the browser
		if cfg.Browser.Enabled && !noBrowser {
			launcher := browser.NewLauncher(cfg.Browser, runner, logg)
			if err := launcher.Launch(cfg.WebsiteURL); err != nil {
				logg.Warn("Could not open browser. Please install chromium-browser, google-chrome, or firefox.", zap.Error(err))
			}
		}

		app := server.New(logg)

		mgr := loader.NewManager(logg)
		mgr.Register(system.NewFeature(server.AppName, cfg.Document()))
		mgr.Register(sound.NewFeature(cfg.SoundFiles(), player.New(cfg.Player, runner, logg), logg))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		addr := server.Addr(cfg.Server.Host, cfg.Port)
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("addr", addr))
			errCh <- app.Listen(addr)
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-c:
		}

		logg.Info("Shutting down server...")
		return server.Shutdown(app, cfg.Server)
	},
}

func init() {
	runCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open the kiosk browser")
	RootCmd.AddCommand(runCmd)
}
