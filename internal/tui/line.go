package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/benbenti/PhotoID/internal/domain"
)

// LinePresenter implements app.Presenter over plain line-oriented IO,
// used when stdout is not a terminal or the full-screen UI is turned
// off. Questions show the photo path; answers are read one per line.
type LinePresenter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLinePresenter builds a presenter reading answers from in and
// writing prompts to out.
func NewLinePresenter(in io.Reader, out io.Writer) *LinePresenter {
	return &LinePresenter{in: bufio.NewScanner(in), out: out}
}

func (p *LinePresenter) ShowQuestion(q domain.Question, qNo, total int) (string, error) {
	fmt.Fprintf(p.out, "\nQuestion %d on %d\n", qNo, total)
	fmt.Fprintf(p.out, "Photo: %s\n", q.Photo)
	fmt.Fprint(p.out, "Who is this? ")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", fmt.Errorf("read answer: %w", io.EOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *LinePresenter) ShowFeedback(fb domain.Feedback) error {
	_, err := fmt.Fprintln(p.out, fb.Text())
	return err
}

func (p *LinePresenter) ShowSummary(percent int, answered bool) error {
	if !answered {
		_, err := fmt.Fprintln(p.out, "Test finished!\nNo questions were answered.")
		return err
	}
	_, err := fmt.Fprintf(p.out, "Test finished!\nYour overall success rate is %d%%\n", percent)
	return err
}
