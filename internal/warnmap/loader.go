package warnmap

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyMap is returned when an input holds no records.
var ErrEmptyMap = errors.New("warnmap has no records")

// Load reads a whitespace-separated warnmap file:
// sector iy iz status [extra...]
// Blank lines and lines starting with '#' are ignored.
func Load(path string) (*WarnMap, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Read(fh, path)
}

// Read parses a warnmap from r; name is used in error messages and as Source.
func Read(r io.Reader, name string) (*WarnMap, error) {
	m := &WarnMap{Source: name}
	sc := bufio.NewScanner(r)
	ln, ncol := 0, 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < MinColumns {
			return nil, fmt.Errorf("%s:%d: want at least %d columns, got %d", name, ln, MinColumns, len(f))
		}
		if ncol == 0 {
			ncol = len(f)
		} else if len(f) != ncol {
			return nil, fmt.Errorf("%s:%d: column count %d differs from first row (%d)", name, ln, len(f), ncol)
		}
		vals := make([]int, len(f))
		for i, tok := range f {
			v, err := parseInt(tok)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: column %d: %w", name, ln, i+1, err)
			}
			vals[i] = v
		}
		rec := ChannelRecord{Sector: vals[0], IY: vals[1], IZ: vals[2], Status: vals[3]}
		if len(vals) > MinColumns {
			rec.Extra = vals[MinColumns:]
		}
		m.Records = append(m.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(m.Records) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMap)
	}
	return m, nil
}

// parseInt accepts plain integers and integral floats ("50.0", "1e2"),
// which numpy-written maps sometimes contain.
func parseInt(tok string) (int, error) {
	if v, err := strconv.Atoi(tok); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", tok)
	}
	return int(f), nil
}

// LoadAll loads every path in order. The context is checked between files.
func LoadAll(ctx context.Context, paths []string) ([]*WarnMap, error) {
	maps := make([]*WarnMap, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := Load(p)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	return maps, nil
}
