package models

// Mood is the critic's reaction to a finished day.
type Mood string

const (
	MoodDisappointed Mood = "DISAPPOINTED"
	MoodDisgusted    Mood = "DISGUSTED"
	MoodDelighted    Mood = "DELIGHTED"
	MoodProfessional Mood = "PROFESSIONAL"
)

// DailyReview is the end-of-day report.
type DailyReview struct {
	Day     int     `json:"day"`
	Money   int     `json:"money"`
	Target  int     `json:"target"`
	Hygiene float64 `json:"hygiene"`
	Score   int     `json:"score"`
	Success bool    `json:"success"`
	Mood    Mood    `json:"mood"`
	Verdict string  `json:"verdict"`
}
