package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/course"
)

// createCourse submits the learning request, then keeps watching the course
// while the backend generates chapters, printing each one as it arrives.
func (cli *commandLine) createCourse(query string, hours int, docs, imgs []string) error {
	ctx := context.Background()

	nc := course.NewCourse{Query: query, TimeHours: hours}
	var err error
	if nc.DocumentIDs, err = cli.uploadAll(ctx, docs, cli.client.UploadDocument); err != nil {
		return err
	}
	if nc.PictureIDs, err = cli.uploadAll(ctx, imgs, cli.client.UploadImage); err != nil {
		return err
	}

	crs, err := cli.client.CreateCourse(ctx, nc)
	if err != nil {
		return err
	}
	cli.notifier.Notify("course "+crs.ID+" is being generated", core.NotifyInfo, 0)

	view := course.NewView(crs)
	seen := len(crs.Chapters)

	handle := cli.watcher.Watch(ctx, crs.ID, func(snapshot course.Course) {
		view.ApplyUpdate(snapshot)
		current := view.Course()
		for ; seen < len(current.Chapters); seen++ {
			chap := current.Chapters[seen]
			cli.printf("  + chapter %d: %s (%dmin)\n", seen+1, chap.Caption, chap.TimeMinutes)
		}
	})

	// tearing down the command must also tear down the watch
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	select {
	case <-handle.Done():
	case <-interrupt:
		handle.Stop()
		cli.notifier.Notify("stopped watching; generation continues server-side", core.NotifyWarning, 0)
		return nil
	}
	if err := handle.Err(); err != nil {
		return err
	}

	final := view.Course()
	if !final.Status.Terminal() {
		cli.notifier.Notify("generation is taking a while; check back with `show -course "+final.ID+"`", core.NotifyWarning, 0)
		return nil
	}
	cli.printf("\n")
	cli.printCourse(final)
	if selected, ok := view.Selected(); ok {
		cli.printf("\nUp next: %s\n", selected.Caption)
	}
	cli.notifier.Notify("course ready", core.NotifySuccess, 0)
	return nil
}

func (cli *commandLine) uploadAll(
	ctx context.Context,
	paths []string,
	upload func(ctx context.Context, filename string, r io.Reader) (string, error),
) ([]string, error) {
	var ids []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", path)
		}
		id, err := upload(ctx, filepath.Base(f.Name()), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
