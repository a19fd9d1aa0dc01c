package glgen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrDuplicate = errors.New("duplicate entry point")
	ErrGap       = errors.New("offset gap")
	ErrABI       = errors.New("published offset changed")
)

// Validate checks that names are unique and that offsets form a
// permutation of [0, N).
func (r *Registry) Validate() error {
	var errs []error
	names := make(map[string]string)
	offsets := make(map[int]string)
	n := 0
	for _, c := range r.Categories {
		for _, f := range c.Functions {
			n++
			if f.Name == "" {
				errs = append(errs, fmt.Errorf("function without a name at offset %d", f.Offset))
				continue
			}
			for _, name := range append([]string{f.Name}, aliasNames(f)...) {
				if prev, ok := names[name]; ok {
					errs = append(errs, fmt.Errorf("%w: %s (%s, %s)", ErrDuplicate, name, prev, f.Name))
					continue
				}
				names[name] = f.Name
			}
			if prev, ok := offsets[f.Offset]; ok {
				errs = append(errs, fmt.Errorf("%w: offset %d used by %s and %s", ErrDuplicate, f.Offset, prev, f.Name))
				continue
			}
			offsets[f.Offset] = f.Name
			for _, p := range f.Params {
				if _, err := GoType(p.Type); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
				}
			}
			if f.Return != nil {
				if _, err := GoType(f.Return.Type); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		if _, ok := offsets[i]; !ok {
			errs = append(errs, fmt.Errorf("%w: nothing at offset %d of %d", ErrGap, i, n))
		}
	}
	return errors.Join(errs...)
}

func aliasNames(f Function) []string {
	out := make([]string, len(f.Aliases))
	for i, a := range f.Aliases {
		out[i] = a.Name
	}
	return out
}

// Published is one line of the ABI file.
type Published struct {
	Offset int
	Name   string
}

// ReadABI parses "<offset> <name>" lines, skipping blanks and # comments.
func ReadABI(r io.Reader) ([]Published, error) {
	var out []Published
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("abi:%d: want <offset> <name>, got %q", ln, line)
		}
		off, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("abi:%d: %w", ln, err)
		}
		out = append(out, Published{Offset: off, Name: fields[1]})
	}
	return out, sc.Err()
}

// CheckABI fails when a published entry point moved or disappeared.
// New entry points are fine as long as they come after the published ones,
// which Validate already guarantees for a gap-free registry.
func (r *Registry) CheckABI(published []Published) error {
	offsets := make(map[string]int)
	for _, f := range r.Functions() {
		offsets[f.Name] = f.Offset
	}
	var errs []error
	for _, p := range published {
		off, ok := offsets[p.Name]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: %s (offset %d) was removed", ErrABI, p.Name, p.Offset))
		case off != p.Offset:
			errs = append(errs, fmt.Errorf("%w: %s moved from %d to %d", ErrABI, p.Name, p.Offset, off))
		}
	}
	return errors.Join(errs...)
}

// WriteABI writes the offset table of r in the ReadABI format.
func (r *Registry) WriteABI(w io.Writer) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintln(bw, "# Published dispatch offsets: <offset> <name>.")
	_, _ = fmt.Fprintln(bw, "# Append only. glgen rejects registries that move or drop an entry listed here.")
	for _, f := range r.Functions() {
		_, _ = fmt.Fprintf(bw, "%d %s\n", f.Offset, f.Name)
	}
	return bw.Flush()
}
