package version

import (
	"errors"
	"fmt"
	"time"
)

// Set with -ldflags "-X .../internal/version.Date=2026-03-01 -X ...Commit=..."
var (
	Date   string // YYYY-MM-DD, UTC
	Commit string
)

// ErrNoBuildDate means the binary was built without ldflags.
var ErrNoBuildDate = errors.New("build date not set")

// firstDay is build number 0.
var firstDay = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

const shortCommit = 7

// Build identifies the running binary.
type Build struct {
	Number int    // days since firstDay
	Date   string // as injected
	Commit string // abbreviated
}

// Current reads the injected build metadata.
func Current() (Build, error) {
	if Date == "" {
		return Build{}, ErrNoBuildDate
	}

	day, err := time.Parse(time.DateOnly, Date)
	if err != nil {
		return Build{}, fmt.Errorf("parse build date: %w", err)
	}
	if day.Before(firstDay) {
		return Build{}, fmt.Errorf("build date %s predates %s", Date, firstDay.Format(time.DateOnly))
	}

	commit := Commit
	if len(commit) > shortCommit {
		commit = commit[:shortCommit]
	}

	return Build{
		Number: int(day.Sub(firstDay).Hours()) / 24,
		Date:   Date,
		Commit: commit,
	}, nil
}

func (b Build) String() string {
	if b.Commit == "" {
		return fmt.Sprintf("zombicide #%d (%s)", b.Number, b.Date)
	}
	return fmt.Sprintf("zombicide #%d (%s, %s)", b.Number, b.Date, b.Commit)
}

// Banner is the startup line: the build, or why it is unknown.
func Banner() string {
	b, err := Current()
	if err != nil {
		return fmt.Sprintf("zombicide dev build (%v)", err)
	}
	return b.String()
}
