package posts

// Post is a message in a subreddit. Title is optional, plain replies go
// without one. ParentID points at the post being replied to; replies form a
// tree since a parent has to exist before a reply can reference it.
type Post struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Text        string  `json:"text"`
	UserID      string  `json:"userId"`
	SubredditID string  `json:"subredditId"`
	ParentID    *string `json:"parentId"`
}
