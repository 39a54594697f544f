package content

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SongFile is the YAML song schema
type SongFile struct {
	Title         string      `yaml:"title"`
	Duration      Seconds     `yaml:"duration"`
	StartPosition Seconds     `yaml:"start_position"`
	Lines         []LineEntry `yaml:"lines"`
}

// LineEntry is one timed lyric in a song file
type LineEntry struct {
	Text  string  `yaml:"text"`
	Start Seconds `yaml:"start"`
	End   Seconds `yaml:"end"`
}

// Seconds accepts a plain number (12.5) or a clock string ("0:12.5", "1:02:03")
type Seconds float64

// UnmarshalYAML implements yaml.Unmarshaler
func (s *Seconds) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected seconds, got %s", value.Line, kindName(value.Kind))
	}

	v, err := ParseTimestamp(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = Seconds(v)
	return nil
}

// ParseTimestamp parses "SS(.f)", "MM:SS(.f)" or "HH:MM:SS(.f)" into seconds
func ParseTimestamp(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	var total float64
	for i, p := range parts {
		last := i == len(parts)-1
		var v float64
		var err error
		if last {
			v, err = strconv.ParseFloat(p, 64)
		} else {
			var n int
			n, err = strconv.Atoi(p)
			v = float64(n)
		}
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
		// Minutes and seconds fields wrap at 60 once a larger unit is present
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("invalid timestamp %q: field out of range", s)
		}
		total = total*60 + v
	}
	return total, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "scalar"
	}
}
