package strength

// Rating is the human-readable strength label for a score.
type Rating string

const (
	RatingWeak   Rating = "Weak"
	RatingMedium Rating = "Medium"
	RatingStrong Rating = "Strong"
)

// RatingFromScore maps a 0-5 score to its label. Total and monotonic:
// 0-2 Weak, 3-4 Medium, 5 Strong. Out-of-range scores clamp to the
// nearest band rather than panicking.
func RatingFromScore(score int) Rating {
	switch {
	case score >= 5:
		return RatingStrong
	case score >= 3:
		return RatingMedium
	default:
		return RatingWeak
	}
}
