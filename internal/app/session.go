// Package app contains the quiz session use case: drawing questions
// from the photo index, routing answers into the score table and
// reporting the final success rate.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/benbenti/PhotoID/internal/domain"
	"github.com/benbenti/PhotoID/internal/score"
)

// PhotoSource abstracts where questions draw their material from
// (built by the photofs scanner in production).
type PhotoSource interface {
	Identities() []domain.Identity
	Photos(id domain.Identity) ([]domain.Photo, error)
}

// Presenter is the synchronous user-interaction surface. Every call
// blocks until the user has reacted; the session never runs ahead of
// the person answering it.
type Presenter interface {
	// ShowQuestion displays the photo and returns the user's guess.
	ShowQuestion(q domain.Question, qNo, total int) (string, error)
	// ShowFeedback displays the outcome of the answered question and
	// returns once acknowledged.
	ShowFeedback(fb domain.Feedback) error
	// ShowSummary displays the final success rate. answered is false
	// when no question was answered at all.
	ShowSummary(percent int, answered bool) error
}

// State tracks where a session is in its lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
)

// Session sequences a bounded run of questions. It exclusively owns
// its score table while in progress; one question is active at a time
// and every answer mutates the table exactly once, through
// score.RecordAnswer.
type Session struct {
	id     string
	photos PhotoSource
	table  *score.Table
	rng    *rand.Rand
	log    *slog.Logger

	n       int
	qNo     int // 1-based once started
	state   State
	current *domain.Question
}

// Option customizes a session.
type Option func(*Session)

// WithRand injects the random source used to draw questions, so
// question sequences can be reproduced.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithLogger attaches a logger; session events are logged with the
// session id.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// NewSession prepares a quiz of n questions over the given photos,
// tallying into table. The table must already cover every identity the
// source can draw (callers Merge it against the index first).
func NewSession(photos PhotoSource, table *score.Table, n int, opts ...Option) (*Session, error) {
	if n < 0 {
		return nil, fmt.Errorf("question count must not be negative, got %d", n)
	}
	for _, id := range photos.Identities() {
		if !table.Has(id) {
			return nil, fmt.Errorf("identity %q missing from score table: %w", id, domain.ErrUnknownIdentity)
		}
	}
	s := &Session{
		id:     uuid.NewString(),
		photos: photos,
		table:  table,
		n:      n,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		log:    slog.Default(),
		state:  StateNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id)
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Total returns the configured question count.
func (s *Session) Total() int { return s.n }

// QuestionNumber returns the 1-based number of the active question, 0
// before the first draw.
func (s *Session) QuestionNumber() int { return s.qNo }

// Table exposes the score table for rendering and export once the
// session is over.
func (s *Session) Table() *score.Table { return s.table }

// Start moves the session into progress without drawing a question
// yet; Advance draws the first one.
func (s *Session) Start() {
	if s.state != StateNotStarted {
		return
	}
	s.qNo = 0
	s.state = StateInProgress
	s.log.Info("quiz started", "questions", s.n, "identities", len(s.photos.Identities()))
}

// Advance moves to the next question. It returns the freshly drawn
// question and true while questions remain; once the count is
// exhausted the session finishes and ok is false.
func (s *Session) Advance() (domain.Question, bool) {
	if s.state != StateInProgress {
		return domain.Question{}, false
	}
	s.qNo++
	if s.qNo > s.n {
		s.finish()
		return domain.Question{}, false
	}
	q := s.draw()
	s.current = &q
	return q, true
}

// Answer scores the active question. The returned feedback carries the
// message to show the user, including the unrecognized-guess notice
// when the guess matched no known identity (in which case the table is
// left untouched).
func (s *Session) Answer(guess string) (domain.Feedback, error) {
	switch s.state {
	case StateNotStarted:
		return domain.Feedback{}, domain.ErrSessionNotStarted
	case StateFinished:
		return domain.Feedback{}, domain.ErrSessionFinished
	}
	if s.current == nil {
		return domain.Feedback{}, domain.ErrNoActiveQuestion
	}

	truth := s.current.Truth
	correct, err := s.table.RecordAnswer(truth, guess)
	fb := domain.Feedback{Truth: truth, Guess: guess, Correct: correct, Recognized: true}
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnknownGuess):
		fb.Recognized = false
		s.log.Warn("unrecognized guess dropped", "guess", guess, "truth", truth)
	default:
		return domain.Feedback{}, err
	}
	s.log.Info("question answered",
		"question", s.qNo, "truth", truth, "guess", guess, "correct", correct)
	s.current = nil
	return fb, nil
}

// SuccessRate reports the overall percentage of correct answers across
// the whole table, including merged-in previous sessions.
func (s *Session) SuccessRate() (percent int, answered bool) {
	return s.table.SuccessRate()
}

// Run drives the whole session against a synchronous presenter:
// question, answer, feedback, repeated n times, then the summary.
func (s *Session) Run(p Presenter) error {
	s.Start()
	for {
		q, ok := s.Advance()
		if !ok {
			break
		}
		guess, err := p.ShowQuestion(q, s.qNo, s.n)
		if err != nil {
			return fmt.Errorf("question %d: %w", s.qNo, err)
		}
		fb, err := s.Answer(guess)
		if err != nil {
			return fmt.Errorf("question %d: %w", s.qNo, err)
		}
		if err := p.ShowFeedback(fb); err != nil {
			return fmt.Errorf("question %d: %w", s.qNo, err)
		}
	}
	percent, answered := s.SuccessRate()
	return p.ShowSummary(percent, answered)
}

func (s *Session) draw() domain.Question {
	ids := s.photos.Identities()
	truth := ids[s.rng.Intn(len(ids))]
	photos, err := s.photos.Photos(truth)
	if err != nil {
		// The index guarantees at least one photo per identity; an
		// empty list here is a broken precondition, not a user error.
		panic(fmt.Sprintf("draw question: %v", err))
	}
	return domain.Question{Truth: truth, Photo: photos[s.rng.Intn(len(photos))]}
}

func (s *Session) finish() {
	s.state = StateFinished
	s.current = nil
	percent, answered := s.table.SuccessRate()
	s.log.Info("quiz finished", "success_rate", percent, "answered", answered)
}
