package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/course"
)

func (cli *commandLine) listCourses() error {
	courses, err := cli.client.ListCourses(context.Background())
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		cli.printf("No courses yet. Try `create -query \"...\"`.\n")
		return nil
	}
	for _, crs := range courses {
		cli.printf("%s  %-10s %3dh  %s\n", crs.ID, crs.Status, crs.TimeHours, crs.Title)
	}
	return nil
}

func (cli *commandLine) showCourse(courseID string) error {
	crs, err := cli.client.GetCourse(context.Background(), courseID)
	if err != nil {
		return err
	}
	cli.printCourse(crs)
	return nil
}

func (cli *commandLine) printCourse(crs course.Course) {
	cli.printf("%s (%s, %dh)\n", crs.Title, crs.Status, crs.TimeHours)
	if crs.Description != "" {
		cli.printf("%s\n", crs.Description)
	}
	for i, chap := range crs.Chapters {
		mark := " "
		if chap.IsCompleted {
			mark = "x"
		}
		cli.printf("  [%s] %d. %s (%dmin, %d questions)  id=%s\n",
			mark, i+1, chap.Caption, chap.TimeMinutes, len(chap.Questions), chap.ID)
	}
}

// toggleChapter marks a chapter complete/incomplete. Local mirrors are only
// touched after the server acknowledged the change.
func (cli *commandLine) toggleChapter(courseID, chapterID string, done bool) error {
	ctx := context.Background()
	crs, err := cli.client.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}
	view := course.NewView(crs)
	view.Select(chapterID)

	if err := cli.client.SetChapterCompletion(ctx, courseID, chapterID, done); err != nil {
		return err
	}
	view.SetCompleted(chapterID, done)

	state := "incomplete"
	if done {
		state = "complete"
	}
	cli.notifier.Notify("chapter marked "+state, core.NotifySuccess, 0)
	cli.printCourse(view.Course())
	return nil
}

func (cli *commandLine) deleteCourse(courseID string) error {
	if err := cli.client.DeleteCourse(context.Background(), courseID); err != nil {
		return err
	}
	cli.notifier.Notify("course deleted", core.NotifySuccess, 0)
	return nil
}

func (cli *commandLine) upload(kind, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	ctx := context.Background()
	var id string
	switch kind {
	case "document":
		id, err = cli.client.UploadDocument(ctx, filepath.Base(path), f)
	case "image":
		id, err = cli.client.UploadImage(ctx, filepath.Base(path), f)
	default:
		return errors.New("kind must be document or image")
	}
	if err != nil {
		return err
	}
	cli.printf("%s\n", id)
	return nil
}
