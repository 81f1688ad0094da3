package notifysvc

import (
	"testing"
	"time"

	"github.com/mentoralabs/mentora/core"
)

func TestConsoleService_recordsNotifications(t *testing.T) {
	svc := NewConsoleServiceMock()

	svc.Notify("course ready", core.NotifySuccess, time.Second)
	svc.Notify("something broke", core.NotifyError, 0)

	sent := svc.Sent()
	if len(sent) != 2 {
		t.Fatalf("len(Sent()) = %d, want 2", len(sent))
	}
	if sent[0].Message != "course ready" || sent[0].Kind != core.NotifySuccess || sent[0].Duration != time.Second {
		t.Errorf("Sent()[0] = %+v, want course ready/success/1s", sent[0])
	}
	if sent[1].Duration != core.DefaultNotifyDuration {
		t.Errorf("Sent()[1].Duration = %v, want the default %v", sent[1].Duration, core.DefaultNotifyDuration)
	}
}
