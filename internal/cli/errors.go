package cli

import (
	"fmt"
	"strings"
)

type unknownValueError struct {
	kind  string
	value string
	valid []string
}

func (e unknownValueError) Error() string {
	return fmt.Sprintf("unknown %s: %q (want %s)", e.kind, e.value, strings.Join(e.valid, "|"))
}

func errUnknownSortKey(v string) error {
	return unknownValueError{kind: "sort key", value: v, valid: []string{"fame", "popularity"}}
}

func errUnknownTopic(v string, topics []string) error {
	return unknownValueError{kind: "docs topic", value: v, valid: topics}
}
