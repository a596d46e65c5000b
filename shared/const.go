package shared

const (
	UserID      = "user_id"
	AnonymousID = "anonymous"

	// MaxListSize caps every list query.
	MaxListSize = 1000

	RecentActivityLimit = 20
	RecentActivityDays  = 7

	FeatureZen      = "zen"
	FeatureMusic    = "music"
	FeatureCBT      = "cbt"
	FeatureVisual   = "visual"
	FeatureArticles = "articles"

	ActionView     = "view"
	ActionComplete = "complete"
	ActionInteract = "interact"

	QuestionTypeText   = "text"
	QuestionTypeChoice = "choice"
	QuestionTypeNumber = "number"

	DefaultAuthor = "Serenity Team"
)

// UserIDOrAnonymous returns the caller supplied id, or "anonymous" when empty.
func UserIDOrAnonymous(userID string) string {
	if userID == "" {
		return AnonymousID
	}
	return userID
}
