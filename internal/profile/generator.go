package profile

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/Mr-Dark-debug/xanalytics/pkg/timeutil"
)

// Mode selects the Source a Generator draws from.
type Mode string

const (
	// ModeFixed reproduces the historical output byte for byte.
	ModeFixed Mode = "fixed"
	// ModeSequence draws every field from an advancing stream.
	ModeSequence Mode = "sequence"
)

// ParseMode validates a mode name. The empty string selects ModeFixed.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeFixed:
		return ModeFixed, nil
	case ModeSequence:
		return ModeSequence, nil
	default:
		return "", fmt.Errorf("unknown generator mode %q (want fixed or sequence)", s)
	}
}

// Field ranges, inclusive.
const (
	minFollowers, maxFollowers   = 1000, 500000
	minFollowing, maxFollowing   = 100, 5000
	minTweets, maxTweets         = 500, 50000
	maxDailyPosts                = 15
	minEngagement, maxEngagement = 1, 150 // tenths of a percent
	minLikes, maxLikes           = 5, 2000
	maxRetweets                  = 500
	maxReplies                   = 200
	minJoinYear, maxJoinYear     = 2010, 2022
	maxHue                       = 360

	// VerifiedThreshold is the follower count a profile must exceed to be
	// shown as verified.
	VerifiedThreshold = 100000
)

// Generator builds Records from handles.
type Generator struct {
	Mode Mode
}

// NewGenerator returns a Generator for mode.
func NewGenerator(mode Mode) *Generator {
	return &Generator{Mode: mode}
}

// Normalize strips the first "@" and surrounding whitespace from raw input.
// It reports false when nothing is left, in which case the input must be
// ignored rather than generated.
func Normalize(input string) (string, bool) {
	h := strings.TrimSpace(strings.Replace(input, "@", "", 1))
	return h, h != ""
}

// Seed sums the UTF-16 code units of handle.
func Seed(handle string) int {
	seed := 0
	for _, u := range utf16.Encode([]rune(handle)) {
		seed += int(u)
	}
	return seed
}

// DisplayName upper-cases the first character of handle and drops digits
// from the remainder.
func DisplayName(handle string) string {
	runes := []rune(handle)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToUpper(string(runes[0])))
	for _, r := range runes[1:] {
		if r >= '0' && r <= '9' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Generate builds the Record for a normalized, non-empty handle using the
// fixed legacy source.
func Generate(handle string) Record {
	return NewGenerator(ModeFixed).Generate(handle)
}

func (g *Generator) source(seed int) Source {
	if g.Mode == ModeSequence {
		return NewSequenceSource(seed)
	}
	return NewFixedSource(seed)
}

// Generate builds the Record for a normalized, non-empty handle. Callers
// reject empty handles with Normalize first.
func (g *Generator) Generate(handle string) Record {
	src := g.source(Seed(handle))

	followers := Intn(src, minFollowers, maxFollowers)
	following := Intn(src, minFollowing, maxFollowing)
	tweets := Intn(src, minTweets, maxTweets)
	postCount := Intn(src, 0, maxDailyPosts)
	engagement := float64(Intn(src, minEngagement, maxEngagement)) / 10

	times := make([]string, postCount)
	for i := range times {
		hour := Intn(src, 0, 23)
		minute := Intn(src, 0, 59)
		times[i] = timeutil.FormatClock(hour, minute)
	}
	sort.Strings(times)

	posts := make([]Post, len(times))
	for i, t := range times {
		posts[i] = Post{
			ID:       i,
			Time:     t,
			Text:     postTexts[Intn(src, 0, len(postTexts)-1)],
			Likes:    Intn(src, minLikes, maxLikes),
			Retweets: Intn(src, 0, maxRetweets),
			Replies:  Intn(src, 0, maxReplies),
		}
	}

	month := joinMonths[Intn(src, 0, len(joinMonths)-1)]
	year := Intn(src, minJoinYear, maxJoinYear)
	hue := Intn(src, 0, maxHue)

	return Record{
		Handle:      handle,
		Name:        DisplayName(handle),
		Bio:         Bio,
		Followers:   followers,
		Following:   following,
		Tweets:      tweets,
		Verified:    followers > VerifiedThreshold,
		JoinDate:    fmt.Sprintf("%s %d", month, year),
		Engagement:  engagement,
		Hue:         hue,
		AvatarColor: avatarColor(hue),
		DailyPosts:  posts,
	}
}
