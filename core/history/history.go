// Package history summarizes shell history files: how often each program is
// used, and which lines couldn't be parsed.
package history

import (
	"bufio"
	"io"

	"github.com/spf13/afero"

	"github.com/josephlewis42/oyster/core/shell"
)

// Report holds statistics about the lines of a shell history.
type Report struct {
	// Lines is the number of history lines seen.
	Lines int `json:"lines"`
	// Commands is the number of commands parsed out of those lines; a single
	// line can chain several.
	Commands int `json:"commands"`
	// Programs counts occurrences per program name.
	Programs StrCounter `json:"programs"`
	// Skipped counts unparsable lines by reason rather than dropping them
	// silently.
	Skipped StrCounter `json:"skipped"`
}

// Update parses one history line and tallies it.
func (r *Report) Update(line string) {
	r.Lines++

	chain := shell.Parse(line)
	if chain.Len() == 0 {
		kind := shell.Classify(line)
		if kind == shell.LineCommand {
			// The only way a classified command yields an empty chain is a
			// script fragment aborting the parse mid-chain.
			kind = shell.LineScript
		}
		r.Skipped.Increment(kind.String())
		return
	}

	for _, command := range chain.Commands() {
		r.Commands++
		r.Programs.Increment(command.Program())
	}
}

// TopPrograms returns the n most used programs, skipping any in ignore.
func (r *Report) TopPrograms(n int, ignore []string) []Entry {
	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[name] = true
	}

	var entries []Entry
	for _, entry := range r.Programs.Entries() {
		if ignored[entry.Name] {
			continue
		}
		entries = append(entries, entry)
		if len(entries) == n {
			break
		}
	}
	return entries
}

// ReadHistory builds a report from a history stream, one command line per
// line of input.
func ReadHistory(r io.Reader) (*Report, error) {
	report := &Report{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		report.Update(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

// LoadFile builds a report from a history file.
func LoadFile(fsys afero.Fs, path string) (*Report, error) {
	fd, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return ReadHistory(fd)
}
