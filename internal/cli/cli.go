package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Winkmoon/Re-meta-hybrid-mount/internal/artifact"
	"github.com/Winkmoon/Re-meta-hybrid-mount/internal/config"
	"github.com/Winkmoon/Re-meta-hybrid-mount/internal/notifier"
	"github.com/Winkmoon/Re-meta-hybrid-mount/internal/telegram"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagBotToken  string
	flagChatID    string
	flagOutputDir string
	flagConfig    string
	flagDryRun    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yield-notify [topic-id] [event-label]",
		Short: "Upload the build yield to the Telegram granary",
		Long: `Uploads the zip produced by the build to a Telegram chat via the
Bot API, with a caption carrying the build metadata and a link back to
the workflow run. Intended to run as the last step of a CI workflow.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runNotify,
	}

	cmd.Flags().StringVar(&flagBotToken, "bot-token", "", "Bot token (overrides env: TELEGRAM_BOT_TOKEN)")
	cmd.Flags().StringVar(&flagChatID, "chat-id", "", "Target chat ID (overrides env: TELEGRAM_CHAT_ID)")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "output", "Directory searched for the zip to upload")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Optional TOML config file (env vars take precedence)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the payload without sending")

	// Execute prints the final diagnostic; keep cobra from printing it too.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return cmd
}

// runNotify is the main command logic: pre-checks, build, send, report.
func runNotify(cmd *cobra.Command, args []string) error {
	topicID := ""
	eventLabel := telegram.DefaultEventLabel
	if len(args) > 0 {
		topicID = args[0]
	}
	if len(args) > 1 {
		eventLabel = args[1]
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagBotToken != "" {
		cfg.BotToken = flagBotToken
	}
	if flagChatID != "" {
		cfg.ChatID = flagChatID
	}

	// Credentials are checked before touching the filesystem so a
	// misconfigured workflow fails immediately. Dry runs never send,
	// so they work without credentials.
	if !flagDryRun {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	art, skipped, err := artifact.Find(flagOutputDir)
	if err != nil {
		return err
	}
	for _, name := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: ignoring extra archive %s\n", name)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Selecting yield: %s (%s)\n", art.Name, art.SizeLabel())

	caption := telegram.FormatYield(telegram.Yield{
		EventLabel: eventLabel,
		Version:    cfg.Version,
		FileName:   art.Name,
		SizeLabel:  art.SizeLabel(),
		RunURL:     cfg.RunURL(),
	})

	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier(out)
	} else {
		tn, err := notifier.NewTelegramNotifier(cfg.BotToken, cfg.ChatID)
		if err != nil {
			return err
		}
		n = tn

		if telegram.UseThreadID(topicID) {
			fmt.Fprintf(out, "Targeting Topic ID: %s\n", strings.TrimSpace(topicID))
		}
		fmt.Fprintln(out, "Dispatching yield to Granary (Telegram)...")
	}

	if err := n.Deliver(&notifier.Delivery{
		ArtifactPath: art.Path,
		Caption:      caption,
		ThreadID:     topicID,
	}); err != nil {
		var apiErr *telegram.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("storage failed: %d - %s", apiErr.StatusCode, apiErr.Body)
		}
		return fmt.Errorf("transport error: %w", err)
	}

	if !flagDryRun {
		fmt.Fprintln(out, "✅ Yield stored successfully!")
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
