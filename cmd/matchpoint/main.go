// Package main provides the Match Point CLI: evaluate a match snapshot or
// replay a point log through the momentum tracker.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/match-point/internal/config"
	"github.com/yourusername/match-point/internal/engine"
	"github.com/yourusername/match-point/internal/health"
	"github.com/yourusername/match-point/internal/logger"
	"github.com/yourusername/match-point/internal/metrics"
	"github.com/yourusername/match-point/internal/models"
	"github.com/yourusername/match-point/internal/session"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile    string
	snapshotFile  string
	pointsFile    string
	trackedPlayer string
	watchInterval time.Duration

	appLog  *logrus.Logger
	cfg     *config.Config
	manager *session.Manager
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&snapshotFile, "snapshot", "s", "", "Path to match snapshot JSON")
	rootCmd.PersistentFlags().StringVarP(&trackedPlayer, "tracked", "t", "A", "Player to track momentum for (A or B)")

	replayCmd.Flags().StringVarP(&pointsFile, "points", "p", "", "Path to point log JSON")
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 2*time.Second, "Snapshot polling interval")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(watchCmd)
}

var rootCmd = &cobra.Command{
	Use:     "matchpoint",
	Short:   "Live tennis win-probability engine",
	Long:    `Computes next-point, game, set and match win probabilities from a match snapshot, plus outcome forecasts and a momentum signal.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Optional .env for local development
		_ = godotenv.Load()

		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		appLog = logger.NewLogger(cfg.App.LogLevel)
		manager = session.NewManager(cfg, appLog)
		return nil
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a match snapshot",
	Long:  `Loads a match snapshot JSON and prints the full probability report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadSnapshot(snapshotFile)
		if err != nil {
			return err
		}

		s, err := manager.Open(models.Player(trackedPlayer))
		if err != nil {
			return err
		}
		defer manager.Close(s.ID)

		report, err := s.Evaluate(state)
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a point log through the momentum tracker",
	Long:  `Feeds a sequence of point outcomes through counterfactual leverage into the momentum tracker and prints the momentum summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadSnapshot(snapshotFile)
		if err != nil {
			return err
		}
		winners, err := loadPointLog(pointsFile)
		if err != nil {
			return err
		}

		s, err := manager.Open(models.Player(trackedPlayer))
		if err != nil {
			return err
		}
		defer manager.Close(s.ID)

		summary, err := replayPoints(s, state, winners)
		if err != nil {
			return err
		}
		return printJSON(summary)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate a snapshot file as it changes",
	Long:  `Polls the snapshot file and re-evaluates it on every change, printing the updated report. Health and metrics endpoints are served while watching. Stops on interrupt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if snapshotFile == "" {
			return fmt.Errorf("--snapshot is required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.Metrics.Enabled {
			srv := health.NewServer(health.Config{
				ServiceName: cfg.App.Name,
				Version:     Version,
				Commit:      GitCommit,
				Port:        cfg.Metrics.Port,
				MetricsPath: cfg.Metrics.Path,
				Metrics:     metrics.Handler(),
				Logger:      appLog,
			})
			if err := srv.Start(ctx); err != nil {
				return err
			}
			srv.SetReady(true)
		}

		s, err := manager.Open(models.Player(trackedPlayer))
		if err != nil {
			return err
		}
		defer manager.Close(s.ID)

		return watchSnapshot(ctx, s)
	},
}

func watchSnapshot(ctx context.Context, s *session.Session) error {
	wlog := logger.WithComponent(appLog, "watch")
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	var lastModified time.Time
	evaluate := func() {
		info, err := os.Stat(snapshotFile)
		if err != nil {
			wlog.WithError(err).Warn("Snapshot file unreadable")
			return
		}
		if !info.ModTime().After(lastModified) {
			return
		}
		lastModified = info.ModTime()

		state, err := loadSnapshot(snapshotFile)
		if err != nil {
			wlog.WithError(err).Warn("Snapshot rejected")
			return
		}
		report, err := s.Evaluate(state)
		if err != nil {
			wlog.WithError(err).Warn("Evaluation failed")
			return
		}
		if err := printJSON(report); err != nil {
			wlog.WithError(err).Warn("Report not printable")
		}
	}

	evaluate()
	for {
		select {
		case <-ctx.Done():
			wlog.Info("Watch stopped")
			return nil
		case <-ticker.C:
			evaluate()
		}
	}
}

// replaySummary is the output of the replay subcommand.
type replaySummary struct {
	PointsPlayed    int       `json:"points_played"`
	FinalMomentum   float64   `json:"final_momentum"`
	MomentumHistory []float64 `json:"momentum_history"`
	RollingServe    *float64  `json:"rolling_serve_win,omitempty"`
	RollingReceive  *float64  `json:"rolling_receive_win,omitempty"`
	Spikes          int       `json:"spikes"`
}

func replayPoints(s *session.Session, state *models.MatchState, winners []models.Player) (*replaySummary, error) {
	summary := &replaySummary{}
	for i, winner := range winners {
		if !winner.Valid() {
			return nil, fmt.Errorf("point %d: winner must be A or B, got %q", i+1, winner)
		}
		record, err := s.RecordPoint(state, winner)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i+1, err)
		}
		if record.Spike {
			summary.Spikes++
		}

		next, err := engine.AdvancePoint(state, winner == *state.Server)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i+1, err)
		}
		state = next
	}

	tracker := s.Tracker()
	summary.PointsPlayed = tracker.PointsPlayed()
	summary.MomentumHistory = tracker.MomentumHistory()
	if current, ok := tracker.CurrentMomentum(); ok {
		summary.FinalMomentum = current
	}
	if p, ok := tracker.RollingWinProbability(true); ok {
		summary.RollingServe = &p
	}
	if p, ok := tracker.RollingWinProbability(false); ok {
		summary.RollingReceive = &p
	}
	return summary, nil
}

func loadSnapshot(path string) (*models.MatchState, error) {
	if path == "" {
		return nil, fmt.Errorf("--snapshot is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	state := &models.MatchState{BestOfSets: 3, BlendingWeightLive: cfg.Engine.BlendingWeightLive, GenericPriorServePointWin: cfg.Engine.GenericPriorServePointWin}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return state, nil
}

func loadPointLog(path string) ([]models.Player, error) {
	if path == "" {
		return nil, fmt.Errorf("--points is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read point log: %w", err)
	}
	var winners []models.Player
	if err := json.Unmarshal(data, &winners); err != nil {
		return nil, fmt.Errorf("failed to parse point log: %w", err)
	}
	return winners, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
