package course

// Status of a course's server-side generation.
type Status string

const (
	StatusCreating Status = "creating"
	StatusUpdating Status = "updating"
	StatusFinished Status = "finished"
)

// Terminal reports whether the backend is done generating the course.
func (s Status) Terminal() bool { return s == StatusFinished }

type Course struct {
	ID          string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	TimeHours   int       `json:"time_hours"`
	Chapters    []Chapter `json:"chapters"`
}

// Chapter returns the chapter with the given id, if present.
func (c Course) Chapter(chapterID string) (Chapter, bool) {
	for _, chap := range c.Chapters {
		if chap.ID == chapterID {
			return chap, true
		}
	}
	return Chapter{}, false
}

type Chapter struct {
	ID          string     `json:"id"`
	Caption     string     `json:"caption"`
	Content     string     `json:"content"`
	TimeMinutes int        `json:"time_minutes"`
	IsCompleted bool       `json:"is_completed"`
	Questions   []Question `json:"mc_questions"`
}

// Question is a multiple-choice question; immutable once delivered.
type Question struct {
	Question      string `json:"question"`
	AnswerA       string `json:"answer_a"`
	AnswerB       string `json:"answer_b"`
	AnswerC       string `json:"answer_c"`
	AnswerD       string `json:"answer_d"`
	CorrectAnswer string `json:"correct_answer"` // one of "a".."d"
	Explanation   string `json:"explanation"`
}

// Answers returns the four choices keyed by their labels, in display order.
func (q Question) Answers() []Answer {
	return []Answer{
		{Label: "a", Text: q.AnswerA},
		{Label: "b", Text: q.AnswerB},
		{Label: "c", Text: q.AnswerC},
		{Label: "d", Text: q.AnswerD},
	}
}

type Answer struct {
	Label string
	Text  string
}

// NewCourse contains information needed to request a new course.
type NewCourse struct {
	Query       string   `json:"query" validate:"required,notblank"`
	TimeHours   int      `json:"time_hours" validate:"required,min=1,max=100"`
	DocumentIDs []string `json:"document_ids"`
	PictureIDs  []string `json:"picture_ids"`
}

// Validate fails fast on bad input so no request is ever made for it.
func (nc *NewCourse) Validate() error {
	nc.Query = trimQuery(nc.Query)
	return validate(nc)
}
