// bench - URN Code 40 corpus runner
//
// Compares, for every case of a corpus manifest:
//   - Standard-only encoded length (when the input fits the alphabet)
//   - Optimal encoded length as chosen by urncode40.Encode
//   - The mix of block kinds in the optimal encoding
//
// Output: CSV on stdout and a markdown summary on stderr.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/Neumenon/urncode40/urncode40"
)

// CaseResult holds the measurements of one corpus case.
type CaseResult struct {
	Name        string
	InputChars  int
	StandardLen int // 0 when the input does not fit the alphabet
	OptimalLen  int
	Saved       int
	SavedPct    float64
	Kinds       map[urncode40.BlockKind]int
	RoundTrip   bool
}

// Manifest lists the corpus cases.
type Manifest struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Cases       []struct {
		Name  string `json:"name"`
		Input string `json:"input"`
	} `json:"cases"`
}

func main() {
	manifestPath := pflag.String("manifest", "", "corpus manifest (default: search testdata/corpus)")
	pflag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	path := *manifestPath
	if path == "" {
		path = findManifest()
	}
	if path == "" {
		log.Fatal("cannot find testdata/corpus/manifest.yaml")
	}

	manifest, err := loadManifest(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "URN Code 40 Benchmark Runner\n")
	fmt.Fprintf(os.Stderr, "============================\n")
	fmt.Fprintf(os.Stderr, "Corpus: %s (%d cases)\n\n", manifest.Version, len(manifest.Cases))

	var results []CaseResult
	for _, c := range manifest.Cases {
		r, err := measure(c.Name, c.Input)
		if err != nil {
			log.WithField("case", c.Name).Warnf("skip: %v", err)
			continue
		}
		if !r.RoundTrip {
			log.WithField("case", c.Name).Warn("round trip changed the input")
		}
		results = append(results, r)
	}

	writeCSV(os.Stdout, results)
	writeMarkdown(os.Stderr, results, manifest.Version)
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// measure encodes input both ways and checks that it decodes back.
func measure(name, input string) (CaseResult, error) {
	enc, err := urncode40.Encode(input)
	if err != nil {
		return CaseResult{}, err
	}
	blocks, err := urncode40.Inspect(enc)
	if err != nil {
		return CaseResult{}, err
	}
	dec, err := urncode40.Decode(enc)
	if err != nil {
		return CaseResult{}, err
	}

	r := CaseResult{
		Name:       name,
		InputChars: len([]rune(input)),
		OptimalLen: len(enc),
		Kinds:      make(map[urncode40.BlockKind]int),
		RoundTrip:  dec == upperASCII(input),
	}
	for _, b := range blocks {
		r.Kinds[b.Kind]++
	}
	if std, err := urncode40.EncodeStandard(input); err == nil {
		r.StandardLen = len(std)
		r.Saved = r.StandardLen - r.OptimalLen
		r.SavedPct = float64(r.Saved) / float64(r.StandardLen) * 100
	}
	return r, nil
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func findManifest() string {
	paths := []string{
		"testdata/corpus",
		"../testdata/corpus",
		"../../testdata/corpus",
	}
	for _, p := range paths {
		m := filepath.Join(p, "manifest.yaml")
		if _, err := os.Stat(m); err == nil {
			return m
		}
	}
	return ""
}

