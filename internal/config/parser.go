package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads an INI-style configuration from r. Recognized line forms,
// checked in order after trimming surrounding whitespace:
//
//   - blank lines and lines starting with # are skipped
//   - [name] opens a profile; following options belong to it until the next
//     header or end of input
//   - a single bare token (no =) records a flag switched on
//   - key = value records an assignment; one level of matching single or
//     double quotes around the value is stripped, with no escape processing
//
// Assigning the same key again in one scope turns its value into an ordered
// list. Lines matching none of the forms are silently ignored. The only
// parse-time failure besides read errors is a profile header repeated in one
// file, which is never silently merged.
func Parse(r io.Reader) (*File, error) {
	file := &File{
		Options:  make(Values),
		Profiles: make(map[string]Values),
	}
	scope := file.Options

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] == '#' {
			continue
		}

		if len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']' {
			name := line[1 : len(line)-1]
			if _, ok := file.Profiles[name]; ok {
				return nil, &Error{Name: name, Reason: ReasonDuplicateProfile}
			}
			scope = make(Values)
			file.Profiles[name] = scope
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			if strings.ContainsAny(line, " \t") {
				// Multiple tokens without an assignment; ignore.
				continue
			}
			scope[line] = FlagValue(true)
			continue
		}

		key := strings.TrimSpace(line[:eq])
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}
		assign(scope, key, unquote(strings.TrimSpace(line[eq+1:])))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return file, nil
}

// ParseFile reads and parses the configuration file at path. A path that
// cannot be opened is a plain wrapped I/O error, distinct from *Error.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	file, perr := Parse(f)
	if perr != nil {
		return nil, perr
	}
	return file, nil
}

// assign records one key = value line, accumulating repeated assignments
// into an ordered list. Assigning to a key previously seen as a bare flag
// produces a mixed value that validation rejects.
func assign(scope Values, key, value string) {
	existing, ok := scope[key]
	if !ok {
		scope[key] = StringValue(value)
		return
	}
	switch existing.kind {
	case KindFlag:
		scope[key] = mixedValue(value)
	case KindString:
		scope[key] = ListValue(existing.str, value)
	case KindList:
		existing.list = append(existing.list, value)
		scope[key] = existing
	}
}

// unquote strips exactly one level of quotes when both ends carry the same
// quote character. An unterminated quote is kept literally.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
