package app_test

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/benbenti/PhotoID/internal/app"
	"github.com/benbenti/PhotoID/internal/domain"
	"github.com/benbenti/PhotoID/internal/score"
)

// staticSource serves a fixed identity/photo mapping.
type staticSource map[string][]string

func (s staticSource) Identities() []domain.Identity {
	ids := make([]domain.Identity, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s staticSource) Photos(id domain.Identity) ([]domain.Photo, error) {
	photos := s[id]
	if len(photos) == 0 {
		return nil, domain.ErrNoPhotos
	}
	return photos, nil
}

// scriptedPresenter answers with a fixed guess per truth identity.
type scriptedPresenter struct {
	answers   map[string]string
	questions []domain.Question
	feedbacks []domain.Feedback
	percent   int
	answered  bool
	summaries int
}

func (p *scriptedPresenter) ShowQuestion(q domain.Question, qNo, total int) (string, error) {
	p.questions = append(p.questions, q)
	return p.answers[q.Truth], nil
}

func (p *scriptedPresenter) ShowFeedback(fb domain.Feedback) error {
	p.feedbacks = append(p.feedbacks, fb)
	return nil
}

func (p *scriptedPresenter) ShowSummary(percent int, answered bool) error {
	p.percent = percent
	p.answered = answered
	p.summaries++
	return nil
}

func newTestSession(t *testing.T, src staticSource, n int) (*app.Session, *score.Table) {
	t.Helper()
	table := score.New(src.Identities())
	session, err := app.NewSession(src, table, n, app.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session, table
}

func TestSessionLifecycle(t *testing.T) {
	src := staticSource{"Ann": {"Ann_001.jpg"}, "Bob": {"Bob_001.jpg"}}
	session, _ := newTestSession(t, src, 2)

	if session.State() != app.StateNotStarted {
		t.Fatalf("expected NotStarted, got %v", session.State())
	}
	if _, err := session.Answer("Ann"); !errors.Is(err, domain.ErrSessionNotStarted) {
		t.Fatalf("expected ErrSessionNotStarted, got %v", err)
	}

	session.Start()
	if session.State() != app.StateInProgress {
		t.Fatalf("expected InProgress, got %v", session.State())
	}

	for i := 1; i <= 2; i++ {
		q, ok := session.Advance()
		if !ok {
			t.Fatalf("question %d: session ended early", i)
		}
		if session.QuestionNumber() != i {
			t.Fatalf("expected question number %d, got %d", i, session.QuestionNumber())
		}
		if q.Truth == "" || q.Photo == "" {
			t.Fatalf("question %d incomplete: %+v", i, q)
		}
		if _, err := session.Answer(q.Truth); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	if _, ok := session.Advance(); ok {
		t.Fatalf("expected session to finish after %d questions", 2)
	}
	if session.State() != app.StateFinished {
		t.Fatalf("expected Finished, got %v", session.State())
	}
	if _, err := session.Answer("Ann"); !errors.Is(err, domain.ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}
}

func TestAnswerRequiresActiveQuestion(t *testing.T) {
	src := staticSource{"Ann": {"Ann_001.jpg"}}
	session, _ := newTestSession(t, src, 2)
	session.Start()

	if _, err := session.Answer("Ann"); !errors.Is(err, domain.ErrNoActiveQuestion) {
		t.Fatalf("expected ErrNoActiveQuestion, got %v", err)
	}

	q, _ := session.Advance()
	if _, err := session.Answer(q.Truth); err != nil {
		t.Fatalf("answer: %v", err)
	}
	// The question is consumed; answering again needs a new Advance.
	if _, err := session.Answer(q.Truth); !errors.Is(err, domain.ErrNoActiveQuestion) {
		t.Fatalf("expected ErrNoActiveQuestion after scoring, got %v", err)
	}
}

func TestSeededSessionsDrawIdenticalQuestions(t *testing.T) {
	src := staticSource{
		"Ann":  {"Ann_001.jpg", "Ann_002.jpg"},
		"Bob":  {"Bob_001.jpg"},
		"Cleo": {"Cleo_001.jpg", "Cleo_002.jpg", "Cleo_003.jpg"},
	}

	drawAll := func() []domain.Question {
		table := score.New(src.Identities())
		session, err := app.NewSession(src, table, 5, app.WithRand(rand.New(rand.NewSource(42))))
		if err != nil {
			t.Fatalf("new session: %v", err)
		}
		session.Start()
		var qs []domain.Question
		for {
			q, ok := session.Advance()
			if !ok {
				break
			}
			qs = append(qs, q)
			if _, err := session.Answer(q.Truth); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
		return qs
	}

	first := drawAll()
	second := drawAll()
	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("expected 5 questions, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("question %d differs across equally seeded sessions: %+v vs %+v",
				i+1, first[i], second[i])
		}
	}
}

func TestRunScoresTwoQuestionQuiz(t *testing.T) {
	src := staticSource{"Ann": {"Ann_001.jpg"}, "Bob": {"Bob_001.jpg"}}
	table := score.New(src.Identities())
	session, err := app.NewSession(src, table, 2, app.WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	// Correct for Ann (case-insensitive), always "Ann" for Bob.
	presenter := &scriptedPresenter{answers: map[string]string{"Ann": "ann", "Bob": "Ann"}}
	if err := session.Run(presenter); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(presenter.questions) != 2 || len(presenter.feedbacks) != 2 {
		t.Fatalf("expected 2 questions and feedbacks, got %d/%d",
			len(presenter.questions), len(presenter.feedbacks))
	}
	if presenter.summaries != 1 {
		t.Fatalf("expected exactly one summary, got %d", presenter.summaries)
	}
	for _, id := range table.Identities() {
		if table.Cell(id, id) != table.Cell(id, score.CorrectLabel) {
			t.Fatalf("diagonal/correct mismatch for %s", id)
		}
	}

	// With both identities drawn once each, the scenario fixes the rate.
	sawAnn, sawBob := false, false
	for _, q := range presenter.questions {
		switch q.Truth {
		case "Ann":
			sawAnn = true
		case "Bob":
			sawBob = true
		}
	}
	if sawAnn && sawBob {
		if presenter.percent != 50 || !presenter.answered {
			t.Fatalf("expected 50%%, got %d%% answered=%v", presenter.percent, presenter.answered)
		}
		if table.Cell("Bob", "Ann") != 1 {
			t.Fatalf("wrong guess not tallied in [Bob,Ann]")
		}
	}
}

func TestUnrecognizedGuessSurfacesInFeedback(t *testing.T) {
	src := staticSource{"Ann": {"Ann_001.jpg"}}
	session, table := newTestSession(t, src, 1)
	session.Start()

	if _, ok := session.Advance(); !ok {
		t.Fatalf("expected a question")
	}
	fb, err := session.Answer("Zed")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if fb.Recognized || fb.Correct {
		t.Fatalf("expected unrecognized wrong feedback, got %+v", fb)
	}
	if want := "Zed is not even in the list..."; !strings.Contains(fb.Text(), want) {
		t.Fatalf("feedback %q missing %q", fb.Text(), want)
	}
	if table.Shown("Ann") != 0 || table.Cell("Ann", score.CorrectLabel) != 0 {
		t.Fatalf("unrecognized guess mutated the table")
	}
}

func TestZeroLengthSession(t *testing.T) {
	src := staticSource{"Ann": {"Ann_001.jpg"}}
	session, _ := newTestSession(t, src, 0)

	presenter := &scriptedPresenter{answers: map[string]string{}}
	if err := session.Run(presenter); err != nil {
		t.Fatalf("run: %v", err)
	}
	if presenter.summaries != 1 || presenter.answered || presenter.percent != 0 {
		t.Fatalf("zero-length session summary wrong: %+v", presenter)
	}
	if session.State() != app.StateFinished {
		t.Fatalf("expected Finished, got %v", session.State())
	}
}

func TestNewSessionRequiresTableCoverage(t *testing.T) {
	src := staticSource{"Ann": {"Ann_001.jpg"}, "Bob": {"Bob_001.jpg"}}
	table := score.New([]string{"Ann"}) // Bob missing
	if _, err := app.NewSession(src, table, 1); !errors.Is(err, domain.ErrUnknownIdentity) {
		t.Fatalf("expected ErrUnknownIdentity, got %v", err)
	}
}
