package backendsvc

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core/course"
)

var errStreamEnded = errors.New("stream ended before course info arrived")

// CreationError is an error record emitted on the creation stream.
type CreationError struct {
	Message string `json:"message"`
}

func (err *CreationError) Error() string { return err.Message }

// streamRecord is one newline-delimited JSON record of the creation stream.
type streamRecord struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	recordCourseInfo = "course_info"
	recordError      = "error"
)

// CreateCourse submits a learning request via POST /courses/create and reads
// the streamed newline-delimited JSON response until the first course_info
// record, which carries the new course's id and initial metadata. The rest of
// the stream is deliberately abandoned; chapters generated after this point
// are picked up by the Watcher. Input is validated first, so a blank query
// never reaches the network.
func (c *Client) CreateCourse(ctx context.Context, nc course.NewCourse) (course.Course, error) {
	if err := nc.Validate(); err != nil {
		return course.Course{}, err
	}

	data, err := json.Marshal(nc)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "encoding course request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.conf.Backend.StreamTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, "/courses/create", bytes.NewReader(data), "application/json")
	if err != nil {
		return course.Course{}, err
	}

	// the default client would cut the stream at the request timeout
	streamClient := &http.Client{}
	resp, err := streamClient.Do(req)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "starting course creation")
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return course.Course{}, err
	}
	return c.readCreationStream(bufio.NewScanner(resp.Body))
}

// readCreationStream consumes records line by line. Malformed lines are
// logged and skipped; an error record halts processing; the first course_info
// record wins.
func (c *Client) readCreationStream(scanner *bufio.Scanner) (course.Course, error) {
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec streamRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			c.logger.Warn("skipping malformed stream record", err)
			continue
		}
		switch rec.Type {
		case recordCourseInfo:
			var crs course.Course
			if err := json.Unmarshal(rec.Data, &crs); err != nil {
				return course.Course{}, errors.Wrap(err, "decoding course info")
			}
			if crs.Status == "" {
				crs.Status = course.StatusCreating
			}
			return crs, nil
		case recordError:
			cErr := new(CreationError)
			if err := json.Unmarshal(rec.Data, cErr); err != nil || cErr.Message == "" {
				cErr.Message = "course creation failed"
			}
			return course.Course{}, cErr
		default:
			// unknown record kinds are noise; ignore
		}
	}
	if err := scanner.Err(); err != nil {
		return course.Course{}, errors.Wrap(err, "reading course creation stream")
	}
	return course.Course{}, errStreamEnded
}
