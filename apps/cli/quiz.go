package main

import (
	"bufio"
	"context"
	"os"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/course"
)

// takeQuiz runs a chapter quiz in the terminal. Scoring is entirely local;
// the first answer to each question is final.
func (cli *commandLine) takeQuiz(courseID, chapterID string) error {
	chap, err := cli.client.GetChapter(context.Background(), courseID, chapterID)
	if err != nil {
		return err
	}
	qs, err := course.NewQuizSession(chap.Questions)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	for i, q := range qs.Questions {
		cli.printf("\n%d/%d  %s\n", i+1, len(qs.Questions), q.Question)
		for _, a := range q.Answers() {
			cli.printf("  %s) %s\n", a.Label, a.Text)
		}

		var ans course.QuizAnswer
		for {
			cli.printf("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			ans, err = qs.Answer(i, line)
			if err == course.ErrInvalidAnswer {
				cli.printf("%s\n", err)
				continue
			}
			if err != nil {
				return err
			}
			break
		}

		if ans.Correct {
			cli.printf("Correct!\n")
		} else {
			cli.printf("Not quite; the correct answer is %s.\n", q.CorrectAnswer)
		}
		if q.Explanation != "" {
			cli.printf("%s\n", q.Explanation)
		}
	}

	score := qs.Score()
	cli.printf("\nYou scored %d/%d (%d%%).\n", score.Correct, score.Total, score.Percentage)
	kind := core.NotifyWarning
	if score.Passed() {
		kind = core.NotifySuccess
	}
	cli.notifier.Notify(score.Message(), kind, 0)
	return nil
}
