package assets

import (
	"bufio"
	"embed"
	"io"
	"io/fs"
	"strings"
)

//go:embed pairs.tsv sql/*.sql
var FS embed.FS

// Migrations exposes the embedded sql/ directory.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}

// ReadPairs parses "source<TAB>target" lines. Blank lines and # comments are
// skipped, as are lines without a tab.
func ReadPairs(r io.Reader) ([][2]string, error) {
	var out [][2]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		src, tgt, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		src, tgt = strings.TrimSpace(src), strings.TrimSpace(tgt)
		if src == "" || tgt == "" {
			continue
		}
		out = append(out, [2]string{src, tgt})
	}
	return out, sc.Err()
}

// DefaultPairs returns the embedded word list.
func DefaultPairs() ([][2]string, error) {
	f, err := FS.Open("pairs.tsv")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPairs(f)
}
