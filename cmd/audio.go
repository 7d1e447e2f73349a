package cmd

import (
	"fmt"

	"ttrpg-pi/core/storage"
	"ttrpg-pi/feature/audio"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var overwriteFlag bool

// audioCmd is the parent command for audio library operations.
var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Inspect and sync the eight sound files",
}

// audioCheckCmd reports missing sound files.
var audioCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which button sounds are missing on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		report := audio.Check(cfg.SoundFiles())

		fmt.Println("\n--- Audio Files ---")
		for _, s := range report.Slots {
			state := "ok"
			if !s.Exists {
				state = "MISSING"
			}
			fmt.Printf("Button %d: %-8s %s\n", s.Button, state, s.Path)
		}
		for _, b := range report.Unconfigured {
			fmt.Printf("Button %d: %-8s\n", b, "UNSET")
		}
		fmt.Println("-------------------")

		if len(report.Missing) > 0 {
			logg.Warn("Missing audio files detected", zap.Ints("buttons", report.Missing))
			logg.Info("Run `ttrpg-pi audio sync` to fetch them from storage.")
			return nil
		}
		logg.Info("All configured audio files are present.")
		return nil
	},
}

// audioSyncCmd downloads sound files from the configured bucket.
var audioSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the sound files from S3/MinIO storage",
	Long: `Downloads <storage.prefix><file name> from storage.bucket for every configured button.
Existing files are kept unless --overwrite is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := audio.NewService(client, cfg.Storage.Bucket, cfg.Storage.Prefix, logg)
		logg.Info("Syncing audio files...", zap.String("bucket", cfg.Storage.Bucket), zap.String("prefix", cfg.Storage.Prefix))

		report, err := svc.Sync(cmd.Context(), cfg.SoundFiles(), overwriteFlag)
		if err != nil {
			return fmt.Errorf("audio sync failed: %w", err)
		}

		logg.Info("Audio sync completed",
			zap.Ints("downloaded", report.Downloaded),
			zap.Ints("skipped", report.Skipped),
			zap.Ints("not_in_store", report.NotInStore),
			zap.Int("failed", len(report.Failed)),
		)
		if len(report.Failed) > 0 {
			return fmt.Errorf("%d audio files failed to download", len(report.Failed))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(audioCmd)
	audioCmd.AddCommand(audioCheckCmd, audioSyncCmd)

	audioSyncCmd.Flags().BoolVar(&overwriteFlag, "overwrite", false, "Replace files that already exist")
}
