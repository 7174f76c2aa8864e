// Package profile generates the synthetic account statistics shown by the
// xanalytics dashboard.
//
// Every value is a pure function of the handle: the handle's character codes
// are summed into a seed and all fields are drawn from a Source seeded with
// it. Nothing is fetched, stored or timed here.
package profile

import "fmt"

// Bio is shown for every generated profile.
const Bio = "Building things on the internet. Probably tweeting about code."

// Record is the synthetic profile for one handle. A Record is created once
// per scan and never mutated afterwards.
type Record struct {
	Handle      string  `json:"handle"`
	Name        string  `json:"name"`
	Bio         string  `json:"bio"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	Tweets      int     `json:"tweets"`
	Verified    bool    `json:"verified"`
	JoinDate    string  `json:"join_date"`
	Engagement  float64 `json:"engagement"`
	Hue         int     `json:"hue"`
	AvatarColor string  `json:"avatar_color"`
	DailyPosts  []Post  `json:"daily_posts"`
}

// Post is one entry of the "today's posts" timeline.
type Post struct {
	ID       int    `json:"id"`
	Time     string `json:"time"` // "HH:MM", 24-hour, zero padded
	Text     string `json:"text"`
	Likes    int    `json:"likes"`
	Retweets int    `json:"retweets"`
	Replies  int    `json:"replies"`
}

// Initial returns the avatar letter: the first character of the display name.
func (r Record) Initial() string {
	for _, c := range r.Name {
		return string(c)
	}
	return ""
}

// avatarColor formats a hue as the CSS color used for the avatar.
func avatarColor(hue int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 50%%)", hue)
}

// postTexts is the fixed catalog post bodies are drawn from.
var postTexts = [15]string{
	"Just shipped a new feature. The grind never stops.",
	"Hot take: tabs > spaces. Fight me.",
	"Coffee count today: ████████░░ 80%",
	"Sometimes the bug IS the feature.",
	"Deployed to prod on a Friday. Living dangerously.",
	"The code works. I don't know why.",
	"Refactoring is just apologizing to your past self.",
	"git commit -m 'fixed stuff'",
	"Meetings that could've been emails: 4",
	"Stack overflow is my co-pilot.",
	"Today's mood: async/await",
	"New framework dropped. Time to rewrite everything.",
	"The documentation lies.",
	"It works on my machine ¯\\_(ツ)_/¯",
	"Rubber duck debugging actually works.",
}

var joinMonths = [6]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
