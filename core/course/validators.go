package course

import (
	"strings"

	"github.com/mentoralabs/mentora/core"
)

func trimQuery(q string) string {
	return core.CleanString(q)
}

func validate(v interface{}) error {
	if err := core.Validate.Struct(v); err != nil {
		return core.TranslateError(err)
	}
	return nil
}

// validLabel reports whether label designates one of the four choices.
func validLabel(label string) bool {
	switch strings.ToLower(core.CleanString(label)) {
	case "a", "b", "c", "d":
		return true
	}
	return false
}
