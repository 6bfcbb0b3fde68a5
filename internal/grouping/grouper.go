// file: internal/grouping/grouper.go
// version: 1.3.0
// guid: 9e0f1a2b-3c4d-5e6f-7a8b-9c0d1e2f3a4b

package grouping

import (
	"log"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jeffjose/audtag/internal/query"
	"github.com/jeffjose/audtag/internal/tags"
)

// BookGroup is a set of files judged to belong to one audiobook, with a
// display name and a suggested search query.
type BookGroup struct {
	Name  string
	Query string
	Files []string
}

// Grouper partitions flat file lists into book-level groups.
type Grouper struct {
	reader tags.Reader
	debug  bool
}

// New returns a Grouper that reads tag hints through reader. When debug is
// set, grouping decisions are traced via log.Printf.
func New(reader tags.Reader, debug bool) *Grouper {
	return &Grouper{reader: reader, debug: debug}
}

// GroupFiles partitions files into BookGroups. Every input file lands in
// exactly one group. Files are first partitioned by parent directory; a
// directory whose name looks like a book title, or whose files look like one
// sequence, becomes a single group, otherwise its files are sub-clustered by
// stem similarity. Group order follows directory-encounter order, then
// sub-group creation order.
//
// Per-file tag-read failures are treated as "no hint" and never abort
// grouping.
func (g *Grouper) GroupFiles(files []string) []BookGroup {
	dirOrder := make([]string, 0)
	byDir := make(map[string][]string)
	for _, f := range files {
		dir := filepath.Dir(f)
		if _, seen := byDir[dir]; !seen {
			dirOrder = append(dirOrder, dir)
		}
		byDir[dir] = append(byDir[dir], f)
	}

	var groups []BookGroup
	for _, dir := range dirOrder {
		dirFiles := byDir[dir]
		sort.Strings(dirFiles)
		dirName := filepath.Base(dir)

		bookLike := IsBookLikeName(dirName)
		hints := g.albumHints(dirFiles)
		grouped := shouldGroupTogether(dirFiles)
		if g.debug {
			log.Printf("grouping %q: book_like=%v album_hints=%d sequence=%v", dirName, bookLike, len(hints), grouped)
		}

		if bookLike || grouped {
			name := dirName
			if len(hints) == 1 {
				name = hints[0]
			}
			groups = append(groups, BookGroup{Name: name, Files: dirFiles})
			continue
		}

		groups = append(groups, g.subCluster(dirName, dirFiles)...)
	}

	for i := range groups {
		groups[i].Query = query.Infer(groups[i].Files, g.reader)
	}
	return groups
}

// albumHints collects the distinct non-empty album tags of up to the first
// three files, preserving first-seen order.
func (g *Grouper) albumHints(files []string) []string {
	seen := make(map[string]bool)
	var hints []string
	limit := len(files)
	if limit > 3 {
		limit = 3
	}
	for _, f := range files[:limit] {
		st, err := g.reader.ReadSemantic(f)
		if err != nil {
			continue
		}
		album := strings.TrimSpace(st.Album)
		if album != "" && !seen[album] {
			seen[album] = true
			hints = append(hints, album)
		}
	}
	return hints
}

// subCluster splits one directory's files into groups by greedy first-fit
// clustering: each file joins the first existing cluster whose anchor stem
// is at least 0.7 similar, else starts its own. Anchor choice is order
// dependent on purpose; the greedy first-match policy is part of the
// observable contract.
func (g *Grouper) subCluster(dirName string, files []string) []BookGroup {
	type cluster struct {
		anchorStem string
		anchorNorm string
		files      []string
	}
	var clusters []*cluster

	for _, f := range files {
		stem := fileStem(f)
		norm := NormalizeStem(stem)
		placed := false
		for _, c := range clusters {
			if Similarity(norm, c.anchorNorm) >= 0.7 {
				c.files = append(c.files, f)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, &cluster{anchorStem: stem, anchorNorm: norm, files: []string{f}})
		}
	}

	groups := make([]BookGroup, 0, len(clusters))
	for _, c := range clusters {
		name := dirName
		if len(clusters) > 1 {
			anchor := []rune(c.anchorStem)
			if len(anchor) > 50 {
				anchor = anchor[:50]
			}
			name = dirName + "/" + string(anchor)
		}
		groups = append(groups, BookGroup{Name: name, Files: c.files})
	}
	return groups
}

// Only boundary-delimited numbers count as track numbers; a digit run glued
// to a word by an underscore ("The_Hobbit_01") is part of the name, not a
// sequence position.
var reFirstNumber = regexp.MustCompile(`\b\d+\b`)

// shouldGroupTogether decides whether one directory's files look like a
// single book's track sequence.
func shouldGroupTogether(files []string) bool {
	if len(files) <= 1 {
		return true
	}

	stems := make([]string, len(files))
	norms := make([]string, len(files))
	for i, f := range files {
		stems[i] = fileStem(f)
		norms[i] = NormalizeStem(stems[i])
	}

	identical := true
	for _, n := range norms[1:] {
		if n != norms[0] {
			identical = false
			break
		}
	}
	if identical {
		return true
	}

	// A numbered, mostly-sequential run of stems is one book. A couple of
	// large gaps are tolerated; more suggest unrelated numbers (years mixed
	// with track numbers).
	var numbers []int
	for _, s := range stems {
		if m := reFirstNumber.FindString(s); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				numbers = append(numbers, n)
			}
		}
	}
	if len(numbers)*5 >= len(files)*4 {
		sort.Ints(numbers)
		gaps := 0
		for i := 1; i < len(numbers); i++ {
			if numbers[i]-numbers[i-1] > 100 {
				gaps++
			}
		}
		if gaps <= 2 {
			return true
		}
	}

	sims := pairwiseSims(norms)
	if median(sims) >= 0.5 {
		return true
	}

	emptyOrNumeric := 0
	for _, n := range norms {
		if n == "" || isAllDigits(n) {
			emptyOrNumeric++
		}
	}
	if emptyOrNumeric*2 >= len(norms) {
		return true
	}

	min := sims[0]
	for _, s := range sims[1:] {
		if s < min {
			min = s
		}
	}
	return min >= 0.7
}

func pairwiseSims(norms []string) []float64 {
	var sims []float64
	for i := 0; i < len(norms); i++ {
		for j := i + 1; j < len(norms); j++ {
			sims = append(sims, Similarity(norms[i], norms[j]))
		}
	}
	return sims
}

// median takes the upper-middle element for even counts rather than
// averaging, which leans toward keeping a directory together.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
