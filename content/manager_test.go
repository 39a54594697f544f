package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lyric-term/timeline"
)

const sampleYAML = `
title: "Café Song"
duration: "0:21"
start_position: 1.5
lines:
  - text: "  first line  "
    start: 0
    end: 3
  - text: second line
    start: "0:03"
    end: "0:06.5"
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseYAML(t *testing.T) {
	tl, err := ParseYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Café Song", tl.Title(), "title should be NFC composed")
	assert.Equal(t, 21.0, tl.Duration())
	assert.Equal(t, 1.5, tl.StartPosition())
	require.Equal(t, 2, tl.Len())
	assert.Equal(t, timeline.LyricLine{Text: "first line", Start: 0, End: 3}, tl.Line(0))
	assert.Equal(t, timeline.LyricLine{Text: "second line", Start: 3, End: 6.5}, tl.Line(1))
}

func TestParseYAML_RejectsUnknownFields(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("title: x\nduration: 10\ntempo: 120\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tempo")
}

func TestParseYAML_RejectsBadTimestamp(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("title: x\nduration: soon\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timestamp")
}

func TestParseYAML_Empty(t *testing.T) {
	_, err := ParseYAML(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseYAML_InvalidTimelineIsConfigError(t *testing.T) {
	body := `
title: overlapping
duration: 10
lines:
  - {text: a, start: 0, end: 4}
  - {text: b, start: 3, end: 5}
`
	_, err := ParseYAML(strings.NewReader(body))
	require.Error(t, err)

	var cfgErr *timeline.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, 1, cfgErr.Line)
	assert.ErrorIs(t, err, timeline.ErrOverlap)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"12.25", 12.25, true},
		{"1:02", 62, true},
		{"1:02.5", 62.5, true},
		{"1:00:00", 3600, true},
		{" 0:03 ", 3, true},
		{"", 0, false},
		{"1:60", 0, false},
		{"-3", 0, false},
		{"NaN", 0, false},
		{"1:2:3:4", 0, false},
		{"a:10", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		if !tt.ok {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.in)
	}
}

func TestLoad_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := writeFile(t, dir, "song.YAML", sampleYAML)
	tl, err := Load(yamlPath, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, tl.Len())

	lrcPath := writeFile(t, dir, "tune.lrc", "[00:01.00]hello\n[00:04.00]world\n")
	tl, err = Load(lrcPath, 10)
	require.NoError(t, err)
	assert.Equal(t, "tune", tl.Title())
	assert.Equal(t, 10.0, tl.Duration())

	txtPath := writeFile(t, dir, "notes.txt", "hello")
	_, err = Load(txtPath, 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yml", sampleYAML)
	writeFile(t, dir, "a.lrc", "[ti:Alpha]\n[00:00.50]one\n")
	writeFile(t, dir, "broken.yaml", "title: broken\nduration: 0\n")
	writeFile(t, dir, ".hidden.yaml", sampleYAML)
	writeFile(t, dir, "readme.md", "not a song")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	songs, err := Discover(dir, 0)
	require.NoError(t, err)
	require.Len(t, songs, 3)

	assert.Equal(t, filepath.Join(dir, "a.lrc"), songs[0].Path)
	assert.Equal(t, "Alpha", songs[0].Title)
	assert.NoError(t, songs[0].Err)

	assert.Equal(t, filepath.Join(dir, "b.yml"), songs[1].Path)
	assert.Equal(t, 2, songs[1].Lines)

	assert.Equal(t, filepath.Join(dir, "broken.yaml"), songs[2].Path)
	assert.ErrorIs(t, songs[2].Err, timeline.ErrNonPositiveDuration)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	songs, err := Discover(filepath.Join(t.TempDir(), "nope"), 0)
	require.NoError(t, err)
	assert.Empty(t, songs)
}

func TestDefault(t *testing.T) {
	tl := Default()
	assert.Equal(t, "Example Song", tl.Title())
	assert.Equal(t, 21.0, tl.Duration())
	require.Equal(t, 7, tl.Len())
	assert.Equal(t, timeline.LyricLine{Text: "Example line 7", Start: 18, End: 21}, tl.Line(6))
}
