package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/lyric-term/timeline"
)

// Supported song file extensions
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtLRC  = ".lrc"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor LRC
var ErrUnsupportedFormat = errors.New("unsupported song format")

// SongInfo summarizes a discovered song file
type SongInfo struct {
	Path     string
	Title    string
	Duration float64
	Lines    int
	Err      error // Set when the file failed to load or validate
}

// Load reads a song file, choosing the parser by extension
// fallbackDuration is used by LRC files without a [length:] tag
func Load(path string, fallbackDuration float64) (*timeline.Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read song file: %w", err)
	}

	var tl *timeline.Timeline
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML:
		tl, err = ParseYAML(bytes.NewReader(data))
	case ExtLRC:
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		tl, err = ParseLRC(bytes.NewReader(data), name, fallbackDuration)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded song %q from %s (%d lines, %.1fs)", tl.Title(), path, tl.Len(), tl.Duration())
	return tl, nil
}

// ParseYAML decodes and validates a YAML song; unknown keys are rejected
func ParseYAML(r io.Reader) (*timeline.Timeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sf SongFile
	if err := dec.Decode(&sf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty song file")
		}
		return nil, fmt.Errorf("failed to decode song: %w", err)
	}

	return sf.Timeline()
}

// Timeline validates the song file into an immutable timeline
func (sf *SongFile) Timeline() (*timeline.Timeline, error) {
	lines := make([]timeline.LyricLine, len(sf.Lines))
	for i, l := range sf.Lines {
		lines[i] = timeline.LyricLine{
			Text:  normalizeText(l.Text),
			Start: float64(l.Start),
			End:   float64(l.End),
		}
	}
	return timeline.New(normalizeText(sf.Title), float64(sf.Duration), float64(sf.StartPosition), lines)
}

// Discover scans dir for song files and summarizes each one
// A missing directory yields no songs and no error
func Discover(dir string, fallbackDuration float64) ([]SongInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Song directory '%s' does not exist, no songs discovered", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read song directory: %w", err)
	}

	var songs []SongInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ExtYAML, ExtYML, ExtLRC:
		default:
			continue
		}

		path := filepath.Join(dir, name)
		info := SongInfo{Path: path}
		if tl, err := Load(path, fallbackDuration); err != nil {
			info.Err = err
		} else {
			info.Title = tl.Title()
			info.Duration = tl.Duration()
			info.Lines = tl.Len()
		}
		songs = append(songs, info)
	}

	sort.Slice(songs, func(i, j int) bool { return songs[i].Path < songs[j].Path })
	log.Printf("Discovered %d song file(s) in %s", len(songs), dir)
	return songs, nil
}

// normalizeText composes characters so reveal counts match what is displayed
func normalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
