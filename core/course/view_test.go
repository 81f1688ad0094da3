package course

import "testing"

func testCourse(status Status, chapters ...Chapter) Course {
	return Course{
		ID:       "crs-1",
		Title:    "Learn Go",
		Status:   status,
		Chapters: chapters,
	}
}

func chap(id string) Chapter {
	return Chapter{ID: id, Caption: "Chapter " + id}
}

func TestView_ApplyUpdate_growsMonotonically(t *testing.T) {
	view := NewView(testCourse(StatusCreating, chap("c1")))

	// same count: keep local list (last-known chapters win)
	view.ApplyUpdate(testCourse(StatusCreating, chap("other")))
	if got := view.Course().Chapters; len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("chapters after same-count update = %v, want the original single chapter", got)
	}

	// larger count: replace wholesale
	view.ApplyUpdate(testCourse(StatusCreating, chap("c1"), chap("c2"), chap("c3")))
	if got := view.Course().Chapters; len(got) != 3 {
		t.Errorf("len(chapters) = %d, want 3", len(got))
	}

	// a shrunk snapshot never removes chapters
	view.ApplyUpdate(testCourse(StatusUpdating, chap("c1")))
	if got := view.Course().Chapters; len(got) != 3 {
		t.Errorf("len(chapters) after shrunk snapshot = %d, want 3", len(got))
	}
	if got := view.Course().Status; got != StatusUpdating {
		t.Errorf("status = %q, want %q", got, StatusUpdating)
	}
}

func TestView_ApplyUpdate_selectsFirstChapterOnFinish(t *testing.T) {
	view := NewView(testCourse(StatusCreating, chap("c1"), chap("c2")))
	if _, ok := view.Selected(); ok {
		t.Fatal("Selected() reported a chapter before any selection")
	}

	view.ApplyUpdate(testCourse(StatusFinished, chap("c1"), chap("c2")))
	selected, ok := view.Selected()
	if !ok || selected.ID != "c1" {
		t.Errorf("Selected() = %v, %v; want chapter c1", selected, ok)
	}

	// an existing selection is left alone
	view2 := NewView(testCourse(StatusCreating, chap("c1"), chap("c2")))
	view2.Select("c2")
	view2.ApplyUpdate(testCourse(StatusFinished, chap("c1"), chap("c2")))
	if selected, _ := view2.Selected(); selected.ID != "c2" {
		t.Errorf("Selected() = %v, want the pre-existing c2 selection", selected)
	}
}

func TestView_Select(t *testing.T) {
	view := NewView(testCourse(StatusFinished, chap("c1")))
	if view.Select("nope") {
		t.Error("Select(nope) = true, want false")
	}
	if !view.Select("c1") {
		t.Error("Select(c1) = false, want true")
	}
}

func TestView_SetCompleted(t *testing.T) {
	view := NewView(testCourse(StatusFinished, chap("c1"), chap("c2")))
	view.Select("c1")

	// toggling the selected chapter updates both the list entry and the selection
	view.SetCompleted("c1", true)
	if got := view.Course().Chapters[0]; !got.IsCompleted {
		t.Error("chapter list entry c1 not marked completed")
	}
	if selected, _ := view.Selected(); !selected.IsCompleted {
		t.Error("selected chapter not marked completed")
	}

	// toggling another chapter leaves the selection untouched
	view.SetCompleted("c2", true)
	if selected, _ := view.Selected(); selected.ID != "c1" {
		t.Errorf("selection changed to %s after toggling c2", selected.ID)
	}
	if got := view.Course().Chapters[1]; !got.IsCompleted {
		t.Error("chapter list entry c2 not marked completed")
	}

	view.SetCompleted("c1", false)
	if selected, _ := view.Selected(); selected.IsCompleted {
		t.Error("selected chapter still completed after undo")
	}
}
