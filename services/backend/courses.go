package backendsvc

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mentoralabs/mentora/core/course"
)

// ListCourses fetches the dashboard list via GET /courses/.
func (c *Client) ListCourses(ctx context.Context) ([]course.Course, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/courses/", nil, "")
	if err != nil {
		return nil, err
	}
	var courses []course.Course
	if err := c.do(req, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse fetches the full course resource, chapters included.
func (c *Client) GetCourse(ctx context.Context, courseID string) (course.Course, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/courses/"+url.PathEscape(courseID), nil, "")
	if err != nil {
		return course.Course{}, err
	}
	var crs course.Course
	if err := c.do(req, &crs); err != nil {
		return course.Course{}, err
	}
	return crs, nil
}

// GetChapters fetches only the chapter list of a course.
func (c *Client) GetChapters(ctx context.Context, courseID string) ([]course.Chapter, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/courses/"+url.PathEscape(courseID)+"/chapters", nil, "")
	if err != nil {
		return nil, err
	}
	var chapters []course.Chapter
	if err := c.do(req, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// GetChapter fetches a single chapter.
func (c *Client) GetChapter(ctx context.Context, courseID, chapterID string) (course.Chapter, error) {
	path := "/courses/" + url.PathEscape(courseID) + "/chapters/" + url.PathEscape(chapterID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return course.Chapter{}, err
	}
	var chap course.Chapter
	if err := c.do(req, &chap); err != nil {
		return course.Chapter{}, err
	}
	return chap, nil
}

// SetChapterCompletion marks a chapter complete or incomplete on the server.
// Local state must only be updated after this returns nil.
func (c *Client) SetChapterCompletion(ctx context.Context, courseID, chapterID string, done bool) error {
	action := "/incomplete"
	if done {
		action = "/complete"
	}
	path := "/courses/" + url.PathEscape(courseID) + "/chapters/" + url.PathEscape(chapterID) + action
	req, err := c.newRequest(ctx, http.MethodPatch, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// DeleteCourse removes a course via DELETE /courses/{id}.
func (c *Client) DeleteCourse(ctx context.Context, courseID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/courses/"+url.PathEscape(courseID), nil, "")
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
