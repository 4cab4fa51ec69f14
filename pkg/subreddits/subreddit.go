package subreddits

// Subreddit is a community record. UserID is the creator, the only account
// allowed to delete it.
type Subreddit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
}
