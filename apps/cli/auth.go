package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/user"
)

func (cli *commandLine) register() error {
	reader := bufio.NewReader(os.Stdin)
	prompt := func(label string) (string, error) {
		fmt.Print(label + ": ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return core.CleanString(line), nil
	}

	nu := user.NewUser{}
	var err error
	if nu.Name, err = prompt("Full name"); err != nil {
		return err
	}
	if nu.Username, err = prompt("Username"); err != nil {
		return err
	}
	if nu.Email, err = prompt("Email"); err != nil {
		return err
	}

	fmt.Print("Password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	fmt.Print("Confirm password:")
	pwdConfirm, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	nu.Password, nu.PasswordConfirm = string(pwd), string(pwdConfirm)

	usr, err := cli.session.Register(context.Background(), nu)
	if err != nil {
		return err
	}
	cli.notifier.Notify("account created for "+usr.Username+", you can log in now", core.NotifySuccess, 0)
	return nil
}

func (cli *commandLine) login(uname, pwd string) error {
	usr, err := cli.session.Login(context.Background(), user.Credentials{Username: uname, Password: pwd})
	if err != nil {
		return err
	}
	cli.notifier.Notify("welcome back, "+usr.Name, core.NotifySuccess, 0)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.session.Logout(); err != nil {
		return err
	}
	cli.notifier.Notify("logged out", core.NotifyInfo, 0)
	return nil
}

func (cli *commandLine) whoami() error {
	usr, err := cli.session.Current()
	if err != nil {
		return err
	}
	cli.printf("%s (%s) <%s>\n", usr.Name, usr.Username, usr.Email)
	return nil
}
