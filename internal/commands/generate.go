package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/stubbank/stubbank/internal/config"
	"github.com/stubbank/stubbank/internal/session"
)

func newGenerateCommand() *cobra.Command {
	var (
		configPath string
		correct    int
		errCount   int
		from       string
		to         string
		delay      int
		seed       int64
		mode       string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic account and transaction fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("correct") {
				cfg.CorrectCount = correct
			}
			if flags.Changed("error") {
				cfg.ErrorCount = errCount
			}
			if flags.Changed("from") {
				cfg.BeginDate = from
			}
			if flags.Changed("to") {
				cfg.EndDate = to
			}
			if flags.Changed("delay") {
				cfg.DelaySeconds = delay
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("mode") {
				cfg.Mode = mode
			}

			return runGenerate(cfg, outDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a stubbank.yaml config file")
	cmd.Flags().IntVar(&correct, "correct", 10, "number of correct operation units")
	cmd.Flags().IntVar(&errCount, "error", 0, "number of corrupted error records")
	cmd.Flags().StringVar(&from, "from", "", "window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "window end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&delay, "delay", 1, "synthetic collection delay in seconds")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = wall clock)")
	cmd.Flags().StringVar(&mode, "mode", string(session.ModeOperations), "session mode")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for generated fixtures")

	return cmd
}

func runGenerate(cfg *config.Config, outDir string) error {
	sessionCfg, err := cfg.SessionConfig()
	if err != nil {
		return err
	}

	sess := session.New(sessionCfg)

	findings := sess.Validate()
	invalid := false
	for _, f := range findings {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", f.Severity, f.Field, f.Message)
		if f.Severity == session.SeverityError {
			invalid = true
		}
	}
	if invalid {
		return fmt.Errorf("configuration invalid, see validation messages")
	}

	if err := collectWithProgress(sess); err != nil {
		return err
	}

	if err := writeJSON(filepath.Join(outDir, "accounts.json"), sess.Accounts()); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(outDir, "transactions.json"), sess.Transactions()); err != nil {
		return err
	}

	fmt.Printf("Generated %d accounts and %d transactions in %s\n",
		len(sess.Accounts()), len(sess.Transactions()), outDir)
	return nil
}

// collectWithProgress runs Collect while a progress bar polls the session's
// progress indicator.
func collectWithProgress(sess *session.Session) error {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Collecting..."),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan error, 1)
	go func() {
		done <- sess.Collect()
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			_ = bar.Finish()
			return err
		case <-ticker.C:
			_ = bar.Set(sess.Progress())
		}
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
