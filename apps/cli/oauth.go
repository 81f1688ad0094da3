package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core"
)

var errOAuthTimeout = errors.New("timed out waiting for the oauth redirect")

// oauthLogin runs the provider flow: it prints the backend's authorize URL,
// serves the redirect endpoint on the loopback interface and installs the
// token the provider hands back.
func (cli *commandLine) oauthLogin(provider string) error {
	redirectURI := "http://" + cli.conf.OAuth.CallbackAddr + "/auth/callback"
	authURL, err := cli.client.OAuthURL(provider, redirectURI)
	if err != nil {
		return err
	}

	tokenCh := make(chan string, 1)

	app := echo.New()
	app.HideBanner = true
	app.Logger.SetLevel(log.OFF)
	app.Pre(middleware.RemoveTrailingSlash())

	app.GET("/auth/callback", func(ctx echo.Context) error {
		token := ctx.QueryParam("token")
		if token == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing token")
		}
		select {
		case tokenCh <- token:
		default: // a second redirect loses the race; ignore it
		}
		return ctx.String(http.StatusOK, "Logged in. You can close this tab and return to the terminal.")
	})

	go func() {
		if err := app.Start(cli.conf.OAuth.CallbackAddr); err != nil && err != http.ErrServerClosed {
			cli.logger.Error("oauth callback server", err)
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Shutdown(ctx); err != nil {
			cli.logger.Error("stopping oauth callback server", err)
		}
	}()

	cli.printf("Open this URL in your browser to continue:\n\n  %s\n\n", authURL)

	select {
	case token := <-tokenCh:
		usr, err := cli.session.LoginWithToken(context.Background(), token)
		if err != nil {
			return err
		}
		cli.notifier.Notify("welcome back, "+usr.Name, core.NotifySuccess, 0)
		return nil
	case <-time.After(cli.conf.OAuth.LoginTimeout):
		return errOAuthTimeout
	}
}
