package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tirasundara/sms-alert-classifier/internal/config"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/logger"
	"github.com/tirasundara/sms-alert-classifier/internal/notify"
	"github.com/tirasundara/sms-alert-classifier/internal/speech"
)

// shutdownTimeout bounds how long queued speech may take on exit
const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(&cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		exitWithError(err.Error())
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smsclassify",
		Short: "Classify bank SMS alerts and one-time passcodes",
		Long: `Offline, rule based classification of SMS messages into OTPs, transaction
alerts and everything else, with amount, direction, institution and
counterparty extraction for transactions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&cfg.Debug, "debug", false, "Enable debug logs")
	flags.Float64Var(&cfg.Speech.Rate, "speech-rate", cfg.Speech.Rate, "Speech rate, values below 1.1 fall back to the default")
	flags.Float64Var(&cfg.Speech.Pitch, "speech-pitch", cfg.Speech.Pitch, "Speech pitch")
	flags.StringVar(&cfg.Speech.Locale, "speech-locale", cfg.Speech.Locale, "Locale used to pick a voice")
	flags.BoolVar(&cfg.Speech.PreferNatural, "natural-voices", false, "Prefer network or neural voices")
	flags.Int64SliceVar(&cfg.MutedThreads, "mute-thread", nil, "Thread ids whose messages produce no side effects")
	flags.Int64SliceVar(&cfg.CustomThreads, "custom-thread", nil, "Thread ids whose plain messages get their own channel")

	rootCmd.AddCommand(newClassifyCmd(cfg), newScanCmd(cfg))
	return rootCmd
}

// setup validates cfg and returns a context carrying the configured logger
func setup(cmd *cobra.Command, cfg *config.Config) (context.Context, zerolog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New().Level(logger.LevelFor(cfg.Debug))
	return logger.WithContext(cmd.Context(), log), log, nil
}

// effects owns the speaker and dispatcher used when --speak is set
type effects struct {
	speaker    *speech.Speaker
	dispatcher *notify.Dispatcher
}

func startEffects(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*effects, error) {
	speaker := speech.NewSpeaker(
		speech.NewLogEngine(log.With().Str("component", "speech").Logger()),
		speech.WithSettings(cfg.SpeechSettings()),
		speech.WithLogger(log),
	)
	if err := speaker.Start(ctx); err != nil {
		return nil, err
	}

	dispatcher := notify.NewDispatcher(
		notify.NewLogClipboard(log),
		speaker,
		notify.NewLogNotifier(log.With().Str("component", "notify").Logger()),
		notify.WithMutedThreads(cfg.MutedThreads...),
		notify.WithCustomThreads(cfg.CustomThreads...),
		notify.WithLogger(log),
	)

	return &effects{speaker: speaker, dispatcher: dispatcher}, nil
}

func (e *effects) handle(ctx context.Context, results []domain.Result) error {
	for _, r := range results {
		if err := e.dispatcher.Handle(ctx, r.Message, r.Classification); err != nil {
			return err
		}
	}
	return nil
}

func (e *effects) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.speaker.Shutdown(ctx)
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
