package content

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lixenwraith/lyric-term/timeline"
)

// LRCTailSeconds is how long the last line lasts when an LRC file has no length
const LRCTailSeconds = 5.0

var (
	lrcTag     = regexp.MustCompile(`^\[([^\]]*)\]`)
	lrcTime    = regexp.MustCompile(`^(\d+):(\d{1,2})(?:[.:](\d{1,3}))?$`)
	lrcMetaTag = regexp.MustCompile(`^([A-Za-z#]+):(.*)$`)
)

type lrcEntry struct {
	at   float64
	text string
}

// ParseLRC builds a timeline from LRC lyrics
// Each timestamp starts a line that ends at the next timestamp; empty lyrics are
// silence markers. name titles the song when there is no [ti:] tag
func ParseLRC(r io.Reader, name string, fallbackDuration float64) (*timeline.Timeline, error) {
	var (
		entries  []lrcEntry
		title    string
		length   float64
		offsetMs float64
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var times []float64
		rest := raw
		for {
			m := lrcTag.FindStringSubmatch(rest)
			if m == nil {
				break
			}
			tag := strings.TrimSpace(m[1])

			if at, ok := parseLRCTime(tag); ok {
				times = append(times, at)
			} else if len(times) == 0 {
				mm := lrcMetaTag.FindStringSubmatch(tag)
				if mm == nil {
					return nil, fmt.Errorf("line %d: malformed tag [%s]", lineNo, tag)
				}
				value := strings.TrimSpace(mm[2])
				switch strings.ToLower(mm[1]) {
				case "ti":
					title = value
				case "length":
					v, err := ParseTimestamp(value)
					if err != nil {
						return nil, fmt.Errorf("line %d: %w", lineNo, err)
					}
					length = v
				case "offset":
					v, err := strconv.ParseFloat(value, 64)
					if err != nil {
						return nil, fmt.Errorf("line %d: invalid offset %q", lineNo, value)
					}
					offsetMs = v
				}
			} else {
				break
			}
			rest = rest[len(m[0]):]
		}

		text := normalizeText(rest)
		for _, at := range times {
			entries = append(entries, lrcEntry{at: at, text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lyrics: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no timed lyrics found")
	}

	// Positive offsets make lyrics appear sooner
	for i := range entries {
		entries[i].at = math.Max(entries[i].at-offsetMs/1000, 0)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].at < entries[j].at })

	duration := length
	if duration <= 0 {
		duration = fallbackDuration
	}
	if duration <= 0 {
		duration = entries[len(entries)-1].at + LRCTailSeconds
	}

	var lines []timeline.LyricLine
	for i, e := range entries {
		end := duration
		if i+1 < len(entries) {
			end = entries[i+1].at
		}
		// Duplicate timestamps: the later entry wins
		if end == e.at || e.text == "" {
			continue
		}
		lines = append(lines, timeline.LyricLine{Text: e.text, Start: e.at, End: end})
	}

	if title == "" {
		title = name
	}
	if title == "" {
		title = "Untitled"
	}

	return timeline.New(normalizeText(title), duration, 0, lines)
}

// parseLRCTime parses mm:ss, mm:ss.xx or mm:ss:xx
func parseLRCTime(tag string) (float64, bool) {
	m := lrcTime.FindStringSubmatch(tag)
	if m == nil {
		return 0, false
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	if seconds >= 60 {
		return 0, false
	}
	at := float64(minutes*60 + seconds)
	if m[3] != "" {
		frac, _ := strconv.ParseFloat("0."+m[3], 64)
		at += frac
	}
	return at, true
}
