package speech

import (
	"context"

	"github.com/rs/zerolog"
)

// Engine is a speech synthesizer. Say is only called after Init succeeds,
// and never concurrently.
type Engine interface {
	Init(ctx context.Context, settings Settings) error
	Say(ctx context.Context, u Utterance) error
	Close() error
}

// VoiceLister is implemented by engines that can report their installed voices
type VoiceLister interface {
	Voices(ctx context.Context) ([]Voice, error)
}

// LogEngine "speaks" by writing each utterance to a logger
type LogEngine struct {
	log      zerolog.Logger
	voices   []Voice
	settings Settings
}

// NewLogEngine creates a LogEngine that reports voices as its installed voices
func NewLogEngine(log zerolog.Logger, voices ...Voice) *LogEngine {
	return &LogEngine{log: log, voices: voices}
}

// Init implements the Engine interface
func (e *LogEngine) Init(ctx context.Context, settings Settings) error {
	e.settings = settings
	e.log.Debug().
		Float64("rate", settings.Rate).
		Float64("pitch", settings.Pitch).
		Str("voice", settings.Voice).
		Str("locale", settings.Locale).
		Msg("Speech engine ready")
	return nil
}

// Say implements the Engine interface
func (e *LogEngine) Say(ctx context.Context, u Utterance) error {
	e.log.Info().
		Str("utterance_id", u.ID.String()).
		Str("voice", e.settings.Voice).
		Msg(u.Text)
	return nil
}

// Close implements the Engine interface
func (e *LogEngine) Close() error {
	return nil
}

// Voices implements the VoiceLister interface
func (e *LogEngine) Voices(ctx context.Context) ([]Voice, error) {
	return e.voices, nil
}

var (
	_ Engine      = (*LogEngine)(nil)
	_ VoiceLister = (*LogEngine)(nil)
)
