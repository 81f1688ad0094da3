package main

import (
	"log"
	"os"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/user"
	backendsvc "github.com/mentoralabs/mentora/services/backend"
	logsvc "github.com/mentoralabs/mentora/services/logger"
	notifysvc "github.com/mentoralabs/mentora/services/notify"
	sessionstore "github.com/mentoralabs/mentora/storage/session"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "MENTORA : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	notifier := notifysvc.NewConsoleService(log.New(os.Stderr, "", 0), conf)

	// set up local session store
	db, err := sessionstore.Open(conf)
	if err != nil {
		logger.Fatal("opening session store", err)
	}
	defer db.Close()
	store := sessionstore.NewStore(db)

	// a 401 anywhere ends the session, like the web client's redirect home
	client := backendsvc.NewClient(conf, store, logger, func() {
		notifier.Notify("your session has expired, please log in again", core.NotifyWarning, 0)
	})
	session := user.NewSession(store, client)
	watcher := backendsvc.NewWatcher(client, conf, logger)

	cli := &commandLine{
		conf:     conf,
		logger:   logger,
		notifier: notifier,
		session:  session,
		client:   client,
		watcher:  watcher,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			cli.fail(err)
			os.Exit(1)
		}
	}
}
