package course

import "sync"

// View owns the client-side state of one course being studied: the last-known
// server snapshot and which chapter is currently selected. Snapshots may
// arrive from a polling goroutine while the user toggles completion, so all
// access goes through the mutex; last write wins, matching the backend's
// monotonic, append-only chapter generation.
type View struct {
	mu       sync.Mutex
	course   Course
	selected string // chapter id; empty when nothing is selected
}

func NewView(c Course) *View {
	return &View{course: c}
}

func (v *View) Course() Course {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.course
}

// Selected returns the currently selected chapter, if any.
func (v *View) Selected() (Chapter, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected == "" {
		return Chapter{}, false
	}
	return v.course.Chapter(v.selected)
}

// Select marks the chapter with the given id as selected; it is a no-op if
// the course has no such chapter.
func (v *View) Select(chapterID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.course.Chapter(chapterID); !ok {
		return false
	}
	v.selected = chapterID
	return true
}

// ApplyUpdate merges a freshly fetched snapshot into the view. The chapter
// list is replaced only when it grew (the backend only appends chapters while
// generating). When the course reaches a terminal status and nothing is
// selected yet, the first chapter becomes selected.
func (v *View) ApplyUpdate(fetched Course) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.course.Title = fetched.Title
	v.course.Description = fetched.Description
	v.course.Status = fetched.Status
	v.course.TimeHours = fetched.TimeHours
	if len(fetched.Chapters) > len(v.course.Chapters) {
		v.course.Chapters = fetched.Chapters
	}
	if fetched.Status.Terminal() && v.selected == "" && len(v.course.Chapters) > 0 {
		v.selected = v.course.Chapters[0].ID
	}
}

// SetCompleted mirrors a server-acknowledged completion toggle into the
// chapter list; the selection is the same underlying entry so it follows.
// Unknown chapter ids are ignored.
func (v *View) SetCompleted(chapterID string, done bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.course.Chapters {
		if v.course.Chapters[i].ID == chapterID {
			v.course.Chapters[i].IsCompleted = done
			return
		}
	}
}
