package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/inkpress/inkpress"
)

// Config-time errors.
var (
	ErrBadConfig = errors.New("command: invalid configuration")
	ErrBadTime   = errors.New("command: invalid time, want HH:MM")
)

// StaticCommand is a fixed reply bound to a command name.
type StaticCommand struct {
	Name         string            `json:"name"`
	Reply        string            `json:"reply"`
	ImageOptions *inkpress.Options `json:"image_options,omitempty"`
}

// TimeCommand picks its reply from the time window active at match
// time. ReplyFormat is a template with {key} placeholders filled from
// the active period's fields.
type TimeCommand struct {
	CommandName   string            `json:"command_name"`
	ReplyFormat   string            `json:"reply_format"`
	FallbackReply string            `json:"fallback_reply,omitempty"`
	ImageOptions  *inkpress.Options `json:"image_options,omitempty"`
	TimePeriods   []TimePeriod      `json:"time_periods"`
}

// TimePeriod is one clock-time window plus the free-form fields that
// fill the reply template. A window whose start is later than its end
// crosses midnight.
type TimePeriod struct {
	Start Minute
	End   Minute

	// Fields holds every other key of the period object, stringified,
	// for placeholder substitution.
	Fields map[string]string
}

// UnmarshalJSON reads the fixed start_time and end_time keys and keeps
// everything else as a substitution field.
func (p *TimePeriod) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	if p.Start, err = parseMinute(raw["start_time"]); err != nil {
		return err
	}
	if p.End, err = parseMinute(raw["end_time"]); err != nil {
		return err
	}

	p.Fields = make(map[string]string, len(raw))
	for key, value := range raw {
		if key == "start_time" || key == "end_time" {
			continue
		}
		p.Fields[key] = fmt.Sprint(value)
	}
	return nil
}

// Minute is a clock time as minutes since midnight, 0 through 1439.
type Minute int

// String formats the minute back as HH:MM.
func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// parseMinute parses an "HH:MM" JSON value into a Minute.
func parseMinute(v any) (Minute, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%w: got %v", ErrBadTime, v)
	}
	hh, mm, found := strings.Cut(s, ":")
	if !found || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	h, errH := atoiStrict(hh)
	m, errM := atoiStrict(mm)
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	return Minute(h*60 + m), nil
}

// atoiStrict parses a two-digit decimal without sign or space
// tolerance.
func atoiStrict(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: non-digit %q", ErrBadTime, c)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// Table is a parsed command configuration ready for matching.
type Table struct {
	Static []StaticCommand `json:"static_commands"`
	Time   []TimeCommand   `json:"time_commands"`
}

// ParseConfig parses and validates a JSON command configuration.
// Static commands with an empty name or reply are dropped, mirroring
// the lenient loading of hand-edited config files, but a malformed
// time window fails the whole load: a typo there would otherwise
// surface as silently wrong replies.
func ParseConfig(data []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	kept := t.Static[:0]
	for _, sc := range t.Static {
		sc.Name = strings.TrimSpace(sc.Name)
		if sc.Name == "" || sc.Reply == "" {
			continue
		}
		kept = append(kept, sc)
	}
	t.Static = kept

	for _, tc := range t.Time {
		if strings.TrimSpace(tc.CommandName) == "" {
			return nil, fmt.Errorf("%w: time command without command_name", ErrBadConfig)
		}
		if tc.ReplyFormat == "" {
			return nil, fmt.Errorf("%w: time command %q without reply_format", ErrBadConfig, tc.CommandName)
		}
	}
	return &t, nil
}

// LoadConfig reads and parses a command configuration file.
func LoadConfig(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("command: read config: %w", err)
	}
	return ParseConfig(data)
}
