package content

import "github.com/lixenwraith/lyric-term/timeline"

// Default returns the built-in example song used when no file is given
func Default() *timeline.Timeline {
	sf := SongFile{
		Title:    "Example Song",
		Duration: 21,
	}
	for i := 0; i < 7; i++ {
		start := Seconds(i * 3)
		sf.Lines = append(sf.Lines, LineEntry{
			Text:  exampleLines[i],
			Start: start,
			End:   start + 3,
		})
	}

	tl, err := sf.Timeline()
	if err != nil {
		panic("content: built-in song is invalid: " + err.Error())
	}
	return tl
}

var exampleLines = [7]string{
	"Example line 1",
	"Example line 2",
	"Example line 3",
	"Example line 4",
	"Example line 5",
	"Example line 6",
	"Example line 7",
}
