package course

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/mentoralabs/mentora/core"
)

// PassThreshold is the minimum percentage counting as a pass.
const PassThreshold = 70

var (
	ErrNoQuestions     = errors.New("chapter has no questions")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidAnswer   = errors.New("answer must be one of a, b, c or d")
)

// QuizAnswer records a learner's pick for one question. Ephemeral: it lives
// only for the duration of a quiz session and is never persisted.
type QuizAnswer struct {
	Selected string
	Correct  bool
}

type QuizScore struct {
	Correct    int
	Total      int
	Percentage int
}

func (s QuizScore) Passed() bool { return s.Percentage >= PassThreshold }

// Message returns the congratulatory or remedial feedback for the score.
func (s QuizScore) Message() string {
	if s.Passed() {
		return "Great job! You have mastered this chapter."
	}
	return "Keep practicing - review the chapter and try again."
}

// QuizSession grades a fixed-choice quiz entirely client-side.
// The first answer to a question is final; later picks are ignored.
type QuizSession struct {
	ID        string
	Questions []Question
	answers   map[int]QuizAnswer
}

func NewQuizSession(questions []Question) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &QuizSession{
		ID:        uuid.New().String(),
		Questions: questions,
		answers:   make(map[int]QuizAnswer, len(questions)),
	}, nil
}

// Answer records the pick for question idx (0-based) and reports whether it
// was correct. Once a question is answered, subsequent calls return the
// original result unchanged.
func (qs *QuizSession) Answer(idx int, label string) (QuizAnswer, error) {
	if idx < 0 || idx >= len(qs.Questions) {
		return QuizAnswer{}, ErrUnknownQuestion
	}
	if ans, ok := qs.answers[idx]; ok {
		return ans, nil
	}
	label = strings.ToLower(core.CleanString(label))
	if !validLabel(label) {
		return QuizAnswer{}, ErrInvalidAnswer
	}
	ans := QuizAnswer{
		Selected: label,
		Correct:  label == strings.ToLower(qs.Questions[idx].CorrectAnswer),
	}
	qs.answers[idx] = ans
	return ans, nil
}

// Answered reports the recorded answer for question idx, if any.
func (qs *QuizSession) Answered(idx int) (QuizAnswer, bool) {
	ans, ok := qs.answers[idx]
	return ans, ok
}

func (qs *QuizSession) Done() bool {
	return len(qs.answers) == len(qs.Questions)
}

func (qs *QuizSession) Score() QuizScore {
	var correct int
	for _, ans := range qs.answers {
		if ans.Correct {
			correct++
		}
	}
	total := len(qs.Questions)
	return QuizScore{
		Correct:    correct,
		Total:      total,
		Percentage: int(math.Round(100 * float64(correct) / float64(total))),
	}
}
