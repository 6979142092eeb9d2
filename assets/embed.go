package assets

import (
	"bufio"
	"embed"
	"errors"
	"io/fs"
	"strings"
)

//go:embed target.txt web
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// Target returns the first word listed in target.txt.
func Target() (string, error) {
	lines, err := readLines("target.txt")
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", errors.New("assets: target.txt has no word")
	}
	return lines[0], nil
}

// Web returns the browser UI rooted at web/.
func Web() fs.FS {
	sub, err := fs.Sub(FS, "web")
	if err != nil {
		panic(err) // web is embedded above
	}
	return sub
}
