// assets/embed.go
//
// Default word lists compiled into the binary so the game runs without any
// dictionary files configured. The lists are French and may carry
// accents; the words package normalizes them on load.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed secret.txt dictionary.txt
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
		out = append(out, s)
	}
	return out, sc.Err()
}

// SecretList returns the raw embedded secret candidates.
func SecretList() ([]string, error) {
	return readLines("secret.txt")
}

// DictionaryList returns the raw embedded guess dictionary.
func DictionaryList() ([]string, error) {
	return readLines("dictionary.txt")
}
