package engine

import "pixel_bistro/internal/models"

var verdicts = map[models.Mood]string{
	models.MoodDisappointed: "The till came up short and so did the food. I expected more.",
	models.MoodDisgusted:    "Lovely plates, filthy counters. I will not be touching the salad.",
	models.MoodDelighted:    "A symphony of sizzling pans. I would come back tomorrow.",
	models.MoodProfessional: "Solid service, fair prices, nothing to write home about.",
}

// Review grades the current day for the end-of-day report.
func (e *Engine) Review() models.DailyReview {
	return ReviewOf(e.state)
}

// ReviewOf grades a game state.
func ReviewOf(st models.GameState) models.DailyReview {
	success := st.Money >= st.DailyTarget

	var mood models.Mood
	switch {
	case !success:
		mood = models.MoodDisappointed
	case st.Hygiene < 50:
		mood = models.MoodDisgusted
	case st.Score > 100:
		mood = models.MoodDelighted
	default:
		mood = models.MoodProfessional
	}

	return models.DailyReview{
		Day:     st.Day,
		Money:   st.Money,
		Target:  st.DailyTarget,
		Hygiene: st.Hygiene,
		Score:   st.Score,
		Success: success,
		Mood:    mood,
		Verdict: verdicts[mood],
	}
}
