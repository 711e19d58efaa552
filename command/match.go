package command

import (
	"regexp"
	"strings"
	"time"

	"github.com/inkpress/inkpress"
)

// DefaultFallback is the reply for a time command with no active
// window and no configured fallback_reply.
const DefaultFallback = "Nothing scheduled right now."

// Reply is the outcome of a successful match. When Options is nil the
// reply is plain text; otherwise Text is rendered onto a template
// image with those options.
type Reply struct {
	Text    string
	Options *inkpress.Options
}

// placeholderPattern finds {key} substitution points in a reply
// template.
var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Match finds the first command triggered by a message. Commands are
// invoked as "/name" at the start of the message; static commands are
// checked before time commands, both in configuration order.
//
// The second result is false when no command matches, meaning the
// message is not for this table at all. A matching time command with
// no active window still matches and yields its fallback reply.
func (t *Table) Match(content string, now time.Time) (Reply, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Reply{}, false
	}

	for _, sc := range t.Static {
		if strings.HasPrefix(content, "/"+sc.Name) {
			return Reply{Text: sc.Reply, Options: sc.ImageOptions}, true
		}
	}

	clock := Minute(now.Hour()*60 + now.Minute())
	for _, tc := range t.Time {
		if !strings.HasPrefix(content, "/"+tc.CommandName) {
			continue
		}
		period, ok := tc.activePeriod(clock)
		if !ok {
			fallback := tc.FallbackReply
			if fallback == "" {
				fallback = DefaultFallback
			}
			return Reply{Text: fallback}, true
		}
		return Reply{
			Text:    expand(tc.ReplyFormat, period.Fields),
			Options: tc.ImageOptions,
		}, true
	}
	return Reply{}, false
}

// activePeriod returns the first window containing clock. A window
// with Start > End wraps past midnight.
func (tc *TimeCommand) activePeriod(clock Minute) (TimePeriod, bool) {
	for _, p := range tc.TimePeriods {
		if p.Start <= p.End {
			if p.Start <= clock && clock < p.End {
				return p, true
			}
		} else if clock >= p.Start || clock < p.End {
			return p, true
		}
	}
	return TimePeriod{}, false
}

// expand substitutes {key} placeholders from fields. Unknown keys stay
// literal, so a typo in the template shows up in the reply where the
// config author can see it.
func expand(format string, fields map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(format, func(match string) string {
		if value, ok := fields[match[1:len(match)-1]]; ok {
			return value
		}
		return match
	})
}
