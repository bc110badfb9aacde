package shell

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// RedirectMode says whether a redirect truncates or appends.
type RedirectMode int

const (
	ModeWrite RedirectMode = iota
	ModeAppend
)

func (m RedirectMode) String() string {
	if m == ModeAppend {
		return ">>"
	}
	return ">"
}

// Redirect is one output redirection extracted from a command's arguments.
// The destination is either another file descriptor (as in "2>&1") or a
// file path. Redirects are immutable once built.
type Redirect struct {
	source int
	destFD int
	path   string
	toFD   bool
	mode   RedirectMode
}

// NewFileRedirect builds a redirect from a descriptor to a path.
func NewFileRedirect(source int, path string, mode RedirectMode) Redirect {
	return Redirect{source: source, path: path, mode: mode}
}

// NewFDRedirect builds a descriptor-to-descriptor redirect. The mode is
// always ModeWrite; appending to a file descriptor isn't meaningful.
func NewFDRedirect(source, destination int) Redirect {
	return Redirect{source: source, destFD: destination, toFD: true}
}

// Source returns the descriptor being redirected.
func (r Redirect) Source() int { return r.source }

// Mode returns the redirect mode, always ModeWrite for descriptor
// destinations.
func (r Redirect) Mode() RedirectMode { return r.mode }

// DestinationFD returns the destination descriptor, false if the destination
// is a path.
func (r Redirect) DestinationFD() (int, bool) { return r.destFD, r.toFD }

// DestinationPath returns the destination path, false if the destination is
// a descriptor.
func (r Redirect) DestinationPath() (string, bool) { return r.path, !r.toFD }

func (r Redirect) IsSourceStdin() bool  { return r.source == Stdin }
func (r Redirect) IsSourceStdout() bool { return r.source == Stdout }
func (r Redirect) IsSourceStderr() bool { return r.source == Stderr }

// IsDestinationStdFD reports whether the destination is one of the three
// standard descriptors.
func (r Redirect) IsDestinationStdFD() bool {
	return r.toFD && r.destFD >= Stdin && r.destFD <= Stderr
}

func (r Redirect) IsDestinationStdin() bool  { return r.toFD && r.destFD == Stdin }
func (r Redirect) IsDestinationStdout() bool { return r.toFD && r.destFD == Stdout }
func (r Redirect) IsDestinationStderr() bool { return r.toFD && r.destFD == Stderr }

// String renders the redirect the way it would be typed: "2>&1",
// ">> out.txt", "2> err.txt".
func (r Redirect) String() string {
	source := ""
	if !r.IsSourceStdout() {
		source = strconv.Itoa(r.source)
	}

	if r.toFD {
		return fmt.Sprintf("%s>&%d", source, r.destFD)
	}
	return fmt.Sprintf("%s%s %s", source, r.mode, r.path)
}

// MarshalJSON renders the redirect in its textual form.
func (r Redirect) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// extractRedirect inspects one non-option argument for a redirection.
// next is the following argument, the destination for ">>" forms.
//
// Ambiguous or incomplete candidates are skipped rather than failing: a
// missing destination simply records no redirect. A digit immediately before
// ">" always wins as the source descriptor, even if it could plausibly be
// part of a filename.
func extractRedirect(token, next string, hasNext bool) (Redirect, bool) {
	if isQuoted(token) {
		return Redirect{}, false
	}

	idx := strings.Index(token, ">")
	if idx == -1 {
		return Redirect{}, false
	}

	source := Stdout
	if idx > 0 && token[idx-1] >= '0' && token[idx-1] <= '9' {
		source = int(token[idx-1] - '0')
	}

	rest := token[idx+1:]
	switch {
	case strings.HasPrefix(rest, "&"):
		fd, err := strconv.Atoi(rest[1:])
		if err != nil {
			return Redirect{}, false
		}
		return NewFDRedirect(source, fd), true

	case strings.HasPrefix(rest, ">"):
		// Append form: the destination is the following argument.
		if !hasNext {
			return Redirect{}, false
		}
		destination := strings.TrimLeftFunc(stripQuotes(next), unicode.IsSpace)
		if destination == "" {
			return Redirect{}, false
		}
		return NewFileRedirect(source, destination, ModeAppend), true

	case rest != "":
		// Plain ">" with the filename attached, e.g. ">out.txt".
		return NewFileRedirect(source, stripQuotes(rest), ModeWrite), true
	}

	return Redirect{}, false
}
