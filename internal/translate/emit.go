package translate

import (
	"fmt"
	"io"
	"strings"
)

// listSep both terminates records and separates list elements; the whole
// output stream is one CMake list.
const listSep = ";"

// escape protects literal semicolons in a value from being read as list
// separators by the consumer.
func escape(value string) string {
	return strings.ReplaceAll(value, ";", `\;`)
}

// emitter writes NAME=VALUE records with the remapping threaded through
// every value.
type emitter struct {
	w     io.Writer
	remap Remapping
}

// record writes one raw record. value must already be remapped and
// escaped.
func (e *emitter) record(name, value, ending string) error {
	_, err := fmt.Fprintf(e.w, "%s=%s%s", name, value, ending)
	return err
}

// scalar emits a single remapped value terminated by the list separator.
func (e *emitter) scalar(name, value string) error {
	return e.record(name, escape(e.remap.Apply(value)), listSep)
}

// pathList emits an ordered path sequence as one record. Elements are
// remapped and escaped individually, then joined with an unescaped
// separator so the consumer sees a nested list.
func (e *emitter) pathList(name string, paths []string) error {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = escape(e.remap.Apply(p))
	}
	return e.record(name, strings.Join(parts, listSep), listSep)
}

// trailer emits the final record with no terminating separator, so the
// consumer's list does not end in an empty entry.
func (e *emitter) trailer(name, value string) error {
	return e.record(name, escape(e.remap.Apply(value)), "")
}

// option is one KEY=VALUE line extracted from free-form option text.
type option struct {
	Name  string
	Value string
}

// splitOptionLines breaks multi-line option text into standalone options.
// Lines without a delimiter become a bare option with an empty value;
// lines with an empty key are dropped.
func splitOptionLines(text string) []option {
	var opts []option
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, value, _ := strings.Cut(line, "=")
		if name == "" {
			continue
		}
		opts = append(opts, option{Name: name, Value: value})
	}
	return opts
}
