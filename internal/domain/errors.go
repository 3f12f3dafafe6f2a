package domain

import "errors"

var (
	// ErrUnknownGuess is returned when an answer matches no known identity.
	ErrUnknownGuess = errors.New("guess is not a known identity")
	// ErrUnknownIdentity is returned when a row identity is absent from the score table.
	ErrUnknownIdentity = errors.New("identity not present in score table")
	// ErrNoPhotos indicates an identity without a single backing photograph.
	ErrNoPhotos = errors.New("identity has no photos")
	// ErrNoIdentities indicates a scan that found nothing to quiz on.
	ErrNoIdentities = errors.New("no identities found in photo folders")
	// ErrSessionNotStarted is returned when a session is used before Start.
	ErrSessionNotStarted = errors.New("quiz session not started")
	// ErrSessionFinished is returned when a finished session receives an answer.
	ErrSessionFinished = errors.New("quiz session already finished")
	// ErrNoActiveQuestion is returned when Answer is called without a drawn question.
	ErrNoActiveQuestion = errors.New("no active question to answer")
)
