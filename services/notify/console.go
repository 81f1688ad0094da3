package notifysvc

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mentoralabs/mentora/core"
)

// Notification is one surfaced message, kept for inspection in tests.
type Notification struct {
	Message  string
	Kind     core.NotifyKind
	Duration time.Duration
	At       time.Time
}

type ConsoleService struct {
	std    *log.Logger
	prefix string

	mu            sync.Mutex
	sent          []Notification
	disableOutput bool
}

var _ core.Notifier = (*ConsoleService)(nil)

// NewConsoleService writes notifications to the given logger; the terminal
// stand-in for the web client's toast container.
func NewConsoleService(std *log.Logger, conf *core.Config) *ConsoleService {
	return &ConsoleService{
		std:    std,
		prefix: "[" + conf.AppName + "] ",
	}
}

func (svc *ConsoleService) Notify(message string, kind core.NotifyKind, duration time.Duration) {
	if duration <= 0 {
		duration = core.DefaultNotifyDuration
	}
	n := Notification{Message: message, Kind: kind, Duration: duration, At: time.Now()}

	svc.mu.Lock()
	svc.sent = append(svc.sent, n)
	out := !svc.disableOutput
	svc.mu.Unlock()

	if out {
		svc.std.Println(svc.format(n))
	}
}

func (svc *ConsoleService) format(n Notification) string {
	return fmt.Sprintf("%s%s: %s", svc.prefix, strings.ToUpper(string(n.Kind)), n.Message)
}

// Sent returns a copy of everything notified so far.
func (svc *ConsoleService) Sent() []Notification {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	out := make([]Notification, len(svc.sent))
	copy(out, svc.sent)
	return out
}

// NewConsoleServiceMock records notifications without printing them.
func NewConsoleServiceMock() *ConsoleService {
	return &ConsoleService{
		std:           log.New(new(strings.Builder), "", 0),
		disableOutput: true,
	}
}
