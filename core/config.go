package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string
	Build    string
	WorkDir  string

	Backend struct {
		BaseURL       string
		Timeout       time.Duration
		StreamTimeout time.Duration
		PollInterval  time.Duration
		PollBudget    time.Duration
	}

	OAuth struct {
		CallbackAddr string
		LoginTimeout time.Duration
	}

	SessionDBPath string
	RollbarToken  string
}

// NewConfig loads the configuration from an optional .env file and the environment.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Mentora")
	conf.SetDefault("build", "develop")
	conf.SetDefault("backendBaseUrl", "http://localhost:8000")
	conf.SetDefault("backendTimeout", 30*time.Second)
	conf.SetDefault("streamTimeout", 2*time.Minute)
	conf.SetDefault("pollInterval", 2*time.Second)
	conf.SetDefault("pollBudget", 5*time.Minute)
	conf.SetDefault("oauthCallbackAddr", "127.0.0.1:8123")
	conf.SetDefault("oauthLoginTimeout", 3*time.Minute)
	conf.SetDefault("sessionDbPath", filepath.Join(userHomeDir(), ".mentora", "session.db"))

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(userHomeDir(), ".mentora", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	wd, _ := os.Getwd()
	c := &Config{
		Env:      env,
		Debug:    conf.GetBool("debug"),
		TestMode: conf.GetBool("testMode"),
		AppName:  conf.GetString("appName"),
		Build:    conf.GetString("build"),
		WorkDir:  wd,

		SessionDBPath: conf.GetString("sessionDbPath"),
		RollbarToken:  conf.GetString("rollbarToken"),
	}
	c.Backend.BaseURL = strings.TrimRight(conf.GetString("backendBaseUrl"), "/")
	c.Backend.Timeout = conf.GetDuration("backendTimeout")
	c.Backend.StreamTimeout = conf.GetDuration("streamTimeout")
	c.Backend.PollInterval = conf.GetDuration("pollInterval")
	c.Backend.PollBudget = conf.GetDuration("pollBudget")
	c.OAuth.CallbackAddr = conf.GetString("oauthCallbackAddr")
	c.OAuth.LoginTimeout = conf.GetDuration("oauthLoginTimeout")
	return c
}

func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
