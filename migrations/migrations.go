// Package migrations nhúng các file SQL schema vào binary.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.sql
var files embed.FS

// Direction: "up" hoặc "down"
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

type Migration struct {
	Name string
	SQL  string
}

// Load trả về migrations theo thứ tự áp dụng: up tăng dần, down giảm dần.
func Load(dir Direction) ([]Migration, error) {
	if dir != Up && dir != Down {
		return nil, fmt.Errorf("unknown migration direction %q", dir)
	}

	names, err := fs.Glob(files, "*."+string(dir)+".sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		out = append(out, Migration{
			Name: strings.TrimSuffix(name, "."+string(dir)+".sql"),
			SQL:  string(data),
		})
	}
	return out, nil
}
