// Package analysis computes statistics over recorded move sequences.
package analysis

import (
	"sort"
	"strings"

	"github.com/SeamusWaldron/nxcube"
)

// maxOccurrences caps the sample positions kept per n-gram.
const maxOccurrences = 10

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// Notation returns the sequence in move notation.
func (g NGram) Notation() string {
	return strings.Join(g.Sequence, " ")
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	StartIndex int   `json:"start_index"`
	TsMs       int64 `json:"ts_ms"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// RollingHash implements Rabin-Karp rolling hash over move tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint16
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1009, // Prime above the token range of common sizes
		n:      n,
		window: make([]uint16, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll adds a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint16) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint16 {
	result := make([]uint16, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// tokenize interns each move's notation. Timestamps do not take part.
func tokenize(moves []nxcube.Move) ([]uint16, []string) {
	ids := make(map[string]uint16)
	var names []string
	tokens := make([]uint16, len(moves))
	for i, m := range moves {
		s := m.Notation()
		id, ok := ids[s]
		if !ok {
			id = uint16(len(names))
			ids[s] = id
			names = append(names, s)
		}
		tokens[i] = id
	}
	return tokens, names
}

type ngramEntry struct {
	tokens      []uint16
	first       int
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent n-grams for each n in [minN, maxN].
// Only sequences seen at least twice are reported.
func MineNGrams(moves []nxcube.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if minN < 1 || len(moves) < minN {
		return report
	}

	tokens, names := tokenize(moves)
	for n := minN; n <= maxN && n <= len(moves); n++ {
		if ngrams := mineNGramsForN(tokens, names, moves, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineNGramsForN(tokens []uint16, names []string, moves []nxcube.Move, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}
		start := i - n + 1
		occ := NGramOccurrence{StartIndex: start, TsMs: timestamp(moves[start])}

		window := rh.Window()
		bucket := counts[rh.Hash()]
		var entry *ngramEntry
		for _, e := range bucket {
			if equalTokens(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window, first: start}
			counts[rh.Hash()] = append(bucket, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	var entries []*ngramEntry
	for _, bucket := range counts {
		for _, e := range bucket {
			if e.count >= 2 {
				entries = append(entries, e)
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})
	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		seq := make([]string, len(e.tokens))
		for j, tok := range e.tokens {
			seq[j] = names[tok]
		}
		result[i] = NGram{N: n, Sequence: seq, Count: e.count, Occurrences: e.occurrences}
	}
	return result
}

func equalTokens(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func timestamp(m nxcube.Move) int64 {
	if m.Time.IsZero() {
		return 0
	}
	return m.Time.UnixMilli()
}
