// Package proctitle names the running console process.
package proctitle

import (
	"errors"
	"os"
	"strings"
)

const maxNameLen = 15

// ErrEmptyTitle is returned for a blank title.
var ErrEmptyTitle = errors.New("proctitle: empty title")

func apply(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if len(os.Args) > 0 {
		os.Args[0] = title
	}
	return title, nil
}

func truncate(title string) string {
	if len(title) > maxNameLen {
		return title[:maxNameLen]
	}
	return title
}
