package lexical

import (
	"regexp"
	"strings"
)

// ThreadContext reports whether a body reads as a reply or forward and where
// in an outreach sequence it likely sits.
type ThreadContext struct {
	IsReply          bool     `json:"isReply"`
	IsForward        bool     `json:"isForward"`
	SequencePosition int      `json:"sequencePosition"` // 1..4
	Markers          []string `json:"markers"`
}

var replyMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^On .+ wrote:`),
	regexp.MustCompile(`(?m)^>\s?\S`),
	regexp.MustCompile(`(?i)in reply to`),
	regexp.MustCompile(`(?i)thanks for (your|the) (reply|response)`),
}

var forwardMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)-+\s*forwarded message\s*-+`),
	regexp.MustCompile(`(?i)\bfwd?:`),
	regexp.MustCompile(`(?i)forwarding (this|the below)`),
}

// sequenceCues infer the attempt number from follow-up and closing language.
var sequenceCues = []struct {
	phrases  []string
	position int
}{
	{[]string{"last attempt", "final email", "closing the loop", "close your file", "won't reach out again"}, 4},
	{[]string{"tried to reach", "several times", "a few times now", "third time", "haven't heard back"}, 3},
	{[]string{"following up", "follow up on", "circling back", "checking in", "bumping this"}, 2},
}

// DetectThreadContext scans for reply/forward markers and infers a 1-4
// sequence position from follow-up language.
func DetectThreadContext(subject, body string) ThreadContext {
	res := ThreadContext{SequencePosition: 1, Markers: []string{}}
	combined := subject + "\n" + body
	lower := strings.ToLower(combined)

	for _, re := range replyMarkers {
		if re.MatchString(combined) {
			res.IsReply = true
			res.Markers = append(res.Markers, re.String())
		}
	}
	for _, re := range forwardMarkers {
		if re.MatchString(combined) {
			res.IsForward = true
			res.Markers = append(res.Markers, re.String())
		}
	}

	for _, cue := range sequenceCues {
		for _, p := range cue.phrases {
			if strings.Contains(lower, p) {
				res.SequencePosition = cue.position
				return res
			}
		}
	}

	return res
}
