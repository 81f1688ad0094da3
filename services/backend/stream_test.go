package backendsvc

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/course"
)

func streamHandler(t *testing.T, lines ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/courses/create" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
			return
		}
		flusher := w.(http.Flusher)
		for _, line := range lines {
			_, _ = w.Write([]byte(line + "\n"))
			flusher.Flush()
		}
	})
}

func TestCreateCourse_firstCourseInfoWins(t *testing.T) {
	client, _ := newTestClient(t, streamHandler(t,
		`{"type":"course_info","data":{"course_id":"crs-1","title":"Learn Go","status":"creating"}}`,
		`{"type":"chapter","data":{"id":"ch-1"}}`,
		`{"type":"course_info","data":{"course_id":"crs-2"}}`,
	), nil)

	crs, err := client.CreateCourse(context.Background(), course.NewCourse{Query: "learn Go", TimeHours: 4})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	if crs.ID != "crs-1" || crs.Title != "Learn Go" {
		t.Errorf("CreateCourse() = %+v, want crs-1/Learn Go", crs)
	}
	if crs.Status != course.StatusCreating {
		t.Errorf("Status = %q, want %q", crs.Status, course.StatusCreating)
	}
}

func TestCreateCourse_skipsMalformedLines(t *testing.T) {
	client, _ := newTestClient(t, streamHandler(t,
		`this is not json`,
		``,
		`{"type":"course_info","data":{"course_id":"crs-1"}}`,
	), nil)

	crs, err := client.CreateCourse(context.Background(), course.NewCourse{Query: "learn Go", TimeHours: 4})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	if crs.ID != "crs-1" {
		t.Errorf("CreateCourse().ID = %q, want crs-1", crs.ID)
	}
}

func TestCreateCourse_errorRecord(t *testing.T) {
	client, _ := newTestClient(t, streamHandler(t,
		`{"type":"error","data":{"message":"X"}}`,
		`{"type":"course_info","data":{"course_id":"crs-1"}}`,
	), nil)

	_, err := client.CreateCourse(context.Background(), course.NewCourse{Query: "learn Go", TimeHours: 4})
	cErr, ok := errors.Cause(err).(*CreationError)
	if !ok {
		t.Fatalf("CreateCourse() error = %v, want *CreationError", err)
	}
	if cErr.Message != "X" {
		t.Errorf("CreationError.Message = %q, want X", cErr.Message)
	}
}

func TestCreateCourse_emptyQueryMakesNoRequest(t *testing.T) {
	var requests int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}), nil)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := client.CreateCourse(context.Background(), course.NewCourse{Query: query, TimeHours: 4})
		if _, ok := err.(*core.ValidationError); !ok {
			t.Errorf("CreateCourse(%q) error = %v, want *core.ValidationError", query, err)
		}
	}
	if n := atomic.LoadInt32(&requests); n != 0 {
		t.Errorf("backend received %d requests, want 0", n)
	}
}

func TestCreateCourse_httpError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"generator unavailable"}`))
	}), nil)

	_, err := client.CreateCourse(context.Background(), course.NewCourse{Query: "learn Go", TimeHours: 4})
	apiErr, ok := errors.Cause(err).(*APIError)
	if !ok {
		t.Fatalf("CreateCourse() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Message != "generator unavailable" {
		t.Errorf("APIError = %+v, want 502/generator unavailable", apiErr)
	}
}

func TestCreateCourse_streamEndsWithoutCourseInfo(t *testing.T) {
	client, _ := newTestClient(t, streamHandler(t,
		`{"type":"chapter","data":{"id":"ch-1"}}`,
	), nil)

	if _, err := client.CreateCourse(context.Background(), course.NewCourse{Query: "learn Go", TimeHours: 4}); err == nil {
		t.Fatal("CreateCourse() succeeded on a stream without course_info")
	}
}
