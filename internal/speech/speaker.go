package speech

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrSpeakerClosed is returned when speaking on a speaker that has been shut down
var ErrSpeakerClosed = errors.New("speaker is closed")

func IsSpeakerClosed(err error) bool {
	return errors.Is(err, ErrSpeakerClosed)
}

const defaultQueueSize = 32

// Speaker serialises utterances onto an Engine, first in first out.
// Texts spoken before Start are held and played once the engine is ready.
// It is safe for concurrent use.
type Speaker struct {
	engine   Engine
	settings Settings
	log      zerolog.Logger
	now      func() time.Time

	queue     chan Utterance
	closeChan chan struct{}
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	mu      sync.Mutex
	pending []Utterance
	ready   bool
	started bool
	closed  bool
}

// Option configures a Speaker
type Option func(*Speaker)

func WithSettings(settings Settings) Option {
	return func(s *Speaker) {
		s.settings = settings
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Speaker) {
		s.log = log
	}
}

// WithQueueSize sets how many utterances can wait before Speak blocks
func WithQueueSize(n int) Option {
	return func(s *Speaker) {
		if n > 0 {
			s.queue = make(chan Utterance, n)
		}
	}
}

// NewSpeaker creates a speaker on engine. Nothing is spoken until Start.
func NewSpeaker(engine Engine, opts ...Option) *Speaker {
	s := &Speaker{
		engine:    engine,
		settings:  DefaultSettings(),
		log:       zerolog.Nop(),
		now:       time.Now,
		queue:     make(chan Utterance, defaultQueueSize),
		closeChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.settings = s.settings.Normalize()
	return s
}

// Settings returns the settings the engine was or will be initialised with
func (s *Speaker) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Start initialises the engine, picks a voice when none is configured and
// starts the worker. Held utterances are played first, in order.
func (s *Speaker) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSpeakerClosed
	}
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	settings := s.settings
	s.mu.Unlock()

	settings = s.chooseVoice(ctx, settings)

	if err := s.engine.Init(ctx, settings); err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return fmt.Errorf("failed to initialise speech engine: %w", err)
	}

	s.mu.Lock()
	if s.closed {
		// Shutdown ran while the engine was initialising and left it to us
		s.mu.Unlock()
		if err := s.engine.Close(); err != nil {
			s.log.Warn().Err(err).Msg("Failed to close speech engine")
		}
		return ErrSpeakerClosed
	}

	workCtx, cancel := context.WithCancel(context.Background())
	s.settings = settings
	s.cancel = cancel
	s.ready = true
	held := s.pending
	s.pending = nil
	s.wg.Add(1)
	s.mu.Unlock()

	if len(held) > 0 {
		s.log.Debug().Int("count", len(held)).Msg("Flushing utterances held before start")
	}
	go s.worker(workCtx, held)

	return nil
}

func (s *Speaker) chooseVoice(ctx context.Context, settings Settings) Settings {
	if settings.Voice != "" {
		return settings
	}
	lister, ok := s.engine.(VoiceLister)
	if !ok {
		return settings
	}

	voices, err := lister.Voices(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to list voices, using engine default")
		return settings
	}

	if v, ok := SelectVoice(voices, settings.Locale, settings.PreferNatural); ok {
		settings.Voice = v.Name
		s.log.Debug().
			Str("voice", v.Name).
			Str("locale", v.Locale).
			Bool("high_quality", v.IsHighQuality()).
			Bool("network_required", v.NetworkRequired).
			Msg("Voice selected")
	}
	return settings
}

// Speak enqueues text. Before Start the text is held; afterwards it blocks
// while the queue is full, until ctx is done or the speaker is shut down.
func (s *Speaker) Speak(ctx context.Context, text string) (uuid.UUID, error) {
	u := Utterance{
		ID:         uuid.New(),
		Text:       text,
		EnqueuedAt: s.now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return uuid.Nil, ErrSpeakerClosed
	}
	if !s.ready {
		s.pending = append(s.pending, u)
		s.mu.Unlock()
		return u.ID, nil
	}
	s.mu.Unlock()

	select {
	case s.queue <- u:
		return u.ID, nil
	case <-ctx.Done():
		return uuid.Nil, ctx.Err()
	case <-s.closeChan:
		return uuid.Nil, ErrSpeakerClosed
	}
}

// Stop drops every utterance that has not started playing
func (s *Speaker) Stop() int {
	s.mu.Lock()
	dropped := len(s.pending)
	s.pending = nil
	s.mu.Unlock()

	for {
		select {
		case <-s.queue:
			dropped++
		default:
			if dropped > 0 {
				s.log.Debug().Int("count", dropped).Msg("Dropped pending utterances")
			}
			return dropped
		}
	}
}

// Shutdown refuses new utterances, waits for the queued ones to be spoken
// and closes the engine. If ctx ends first the remaining ones are abandoned.
func (s *Speaker) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.closeChan)
	started := s.ready
	cancel := s.cancel
	s.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		cancel()
		<-done
		_ = s.engine.Close()
		return ctx.Err()
	}

	cancel()
	if err := s.engine.Close(); err != nil {
		return fmt.Errorf("failed to close speech engine: %w", err)
	}
	return nil
}

func (s *Speaker) worker(ctx context.Context, held []Utterance) {
	defer s.wg.Done()

	for _, u := range held {
		s.say(ctx, u)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case u := <-s.queue:
			s.say(ctx, u)
		case <-s.closeChan:
			s.drain(ctx)
			return
		}
	}
}

// drain speaks what is still queued after shutdown was requested
func (s *Speaker) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case u := <-s.queue:
			s.say(ctx, u)
		default:
			return
		}
	}
}

func (s *Speaker) say(ctx context.Context, u Utterance) {
	if ctx.Err() != nil {
		return
	}
	if err := s.engine.Say(ctx, u); err != nil {
		s.log.Error().Err(err).Str("utterance_id", u.ID.String()).Msg("Failed to speak utterance")
	}
}
