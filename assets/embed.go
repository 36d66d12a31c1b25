// assets/embed.go
//
// Embedded word data shipped inside the binary.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed vocabulary.txt
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file,
// uppercased, in file order.
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

// VocabularyList returns the embedded daily solution list.
func VocabularyList() ([]string, error) {
	return readLines("vocabulary.txt")
}
