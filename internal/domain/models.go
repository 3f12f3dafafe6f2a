package domain

import "fmt"

// Identity labels one individual the quiz trains recognition of. It is
// derived from a photo's base filename: everything before the first
// underscore.
type Identity = string

// Photo is the path to one photograph showing a single individual.
type Photo = string

// Question pairs the individual being shown with the photo used to show
// them. It lives for one quiz turn; its only lasting effect is the
// score-table update made when it is answered.
type Question struct {
	Truth Identity
	Photo Photo
}

// Feedback summarizes the outcome of one answered question.
type Feedback struct {
	Truth      Identity
	Guess      string
	Correct    bool
	Recognized bool // false when the guess matches no known identity
}

// Text renders the feedback message shown to the user.
func (f Feedback) Text() string {
	if f.Correct {
		return "Well done!"
	}
	msg := fmt.Sprintf("Wrong! Answer was %s, not %s", f.Truth, f.Guess)
	if !f.Recognized {
		msg += fmt.Sprintf("\n%s is not even in the list...", f.Guess)
	}
	return msg
}
