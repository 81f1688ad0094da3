package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/user"
	backendsvc "github.com/mentoralabs/mentora/services/backend"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf     *core.Config
	logger   core.Logger
	notifier core.Notifier
	session  *user.Session
	client   *backendsvc.Client
	watcher  *backendsvc.Watcher

	out func(format string, args ...interface{}) // print destination, defaults to stdout
}

func (cli *commandLine) printf(format string, args ...interface{}) {
	if cli.out != nil {
		cli.out(format, args...)
		return
	}
	fmt.Printf(format, args...)
}

func (cli *commandLine) printUsage() {
	cli.printf("Usage:\n")
	cli.printf("  register                                        - create an account\n")
	cli.printf("  login -username USERNAME|EMAIL                  - log in with a password\n")
	cli.printf("  oauth -provider google|github|discord           - log in via an oauth provider\n")
	cli.printf("  logout                                          - drop the local session\n")
	cli.printf("  whoami                                          - show the logged in user\n")
	cli.printf("  courses                                         - list your courses\n")
	cli.printf("  show -course ID                                 - show a course and its chapters\n")
	cli.printf("  create -query TEXT -hours N [-doc F] [-img F]   - create an AI generated course\n")
	cli.printf("  complete -course ID -chapter ID [-undo]         - toggle chapter completion\n")
	cli.printf("  quiz -course ID -chapter ID                     - take a chapter quiz\n")
	cli.printf("  upload -kind document|image -file PATH          - upload a file, print its id\n")
	cli.printf("  delete -course ID                               - delete a course\n")
}

// fail surfaces an error to the user; validation failures list their fields.
func (cli *commandLine) fail(err error) {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		msgs := make([]string, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			msgs = append(msgs, f.Field+": "+f.Error)
		}
		cli.notifier.Notify(strings.Join(msgs, "; "), core.NotifyError, 0)
		return
	}
	cli.notifier.Notify(err.Error(), core.NotifyError, 0)
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginUname := loginCmd.String("username", "", "The username or email. The password will be prompted next.")

	oauthCmd := flag.NewFlagSet("oauth", flag.ExitOnError)
	oauthProvider := oauthCmd.String("provider", "", "One of google, github or discord.")

	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	showCourse := showCmd.String("course", "", "The course id.")

	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	createQuery := createCmd.String("query", "", "What you want to learn.")
	createHours := createCmd.Int("hours", 4, "How many hours you want to invest.")
	createDocs := multiFlag{}
	createImgs := multiFlag{}
	createCmd.Var(&createDocs, "doc", "A document to ground the course on; repeatable.")
	createCmd.Var(&createImgs, "img", "An image to ground the course on; repeatable.")

	completeCmd := flag.NewFlagSet("complete", flag.ExitOnError)
	completeCourse := completeCmd.String("course", "", "The course id.")
	completeChapter := completeCmd.String("chapter", "", "The chapter id.")
	completeUndo := completeCmd.Bool("undo", false, "Mark incomplete instead.")

	quizCmd := flag.NewFlagSet("quiz", flag.ExitOnError)
	quizCourse := quizCmd.String("course", "", "The course id.")
	quizChapter := quizCmd.String("chapter", "", "The chapter id.")

	uploadCmd := flag.NewFlagSet("upload", flag.ExitOnError)
	uploadKind := uploadCmd.String("kind", "document", "document or image.")
	uploadFile := uploadCmd.String("file", "", "Path of the file to upload.")

	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	deleteCourse := deleteCmd.String("course", "", "The course id.")

	switch args[1] {
	case "register":
		return cli.register()
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginUname, string(pwd))
	case "oauth":
		if err := oauthCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *oauthProvider == "" {
			oauthCmd.Usage()
			return errHelp
		}
		return cli.oauthLogin(*oauthProvider)
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "courses":
		return cli.listCourses()
	case "show":
		if err := showCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *showCourse == "" {
			showCmd.Usage()
			return errHelp
		}
		return cli.showCourse(*showCourse)
	case "create":
		if err := createCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.createCourse(*createQuery, *createHours, createDocs, createImgs)
	case "complete":
		if err := completeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *completeCourse == "" || *completeChapter == "" {
			completeCmd.Usage()
			return errHelp
		}
		return cli.toggleChapter(*completeCourse, *completeChapter, !*completeUndo)
	case "quiz":
		if err := quizCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *quizCourse == "" || *quizChapter == "" {
			quizCmd.Usage()
			return errHelp
		}
		return cli.takeQuiz(*quizCourse, *quizChapter)
	case "upload":
		if err := uploadCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *uploadFile == "" {
			uploadCmd.Usage()
			return errHelp
		}
		return cli.upload(*uploadKind, *uploadFile)
	case "delete":
		if err := deleteCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *deleteCourse == "" {
			deleteCmd.Usage()
			return errHelp
		}
		return cli.deleteCourse(*deleteCourse)
	default:
		cli.printUsage()
		return errHelp
	}
}

// multiFlag collects repeated string flags.
type multiFlag []string

func (f *multiFlag) String() string { return strings.Join(*f, ",") }

func (f *multiFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}
