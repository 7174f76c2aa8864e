package analysis

import "math"

// Band is one of the five engagement classification tiers.
type Band struct {
	Level       string `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Indicator   string `json:"indicator"`
}

// Bands in descending threshold order. Classify returns the first band whose
// Min the engagement reaches.
var bands = []struct {
	Min float64
	Band
}{
	{10, Band{"VIRAL", "#ff3366", "Exceptional engagement! Posts are resonating massively.", "████████████████████"}},
	{6, Band{"HIGH", "#00ff88", "Strong engagement. Content is performing well above average.", "████████████████░░░░"}},
	{3, Band{"MEDIUM", "#00d4ff", "Average engagement. Room for improvement.", "████████████░░░░░░░░"}},
	{1, Band{"LOW", "#ffaa00", "Below average engagement. Consider optimizing content strategy.", "████████░░░░░░░░░░░░"}},
	{math.Inf(-1), Band{"MINIMAL", "#ff6b6b", "Very low engagement. Review posting times and content quality.", "████░░░░░░░░░░░░░░░░"}},
}

// Classify maps an engagement percentage to its band.
func Classify(engagement float64) Band {
	for _, b := range bands {
		if engagement >= b.Min {
			return b.Band
		}
	}
	return bands[len(bands)-1].Band
}

// Metrics are cosmetic per-post averages scaled from the engagement rate.
// They are not measured from the generated posts.
type Metrics struct {
	AvgLikes    int `json:"avg_likes"`
	AvgRetweets int `json:"avg_retweets"`
	AvgReplies  int `json:"avg_replies"`
}

// Averages derives Metrics as engagement ×120, ×30 and ×15.
func Averages(engagement float64) Metrics {
	return Metrics{
		AvgLikes:    int(math.Round(engagement * 120)),
		AvgRetweets: int(math.Round(engagement * 30)),
		AvgReplies:  int(math.Round(engagement * 15)),
	}
}
