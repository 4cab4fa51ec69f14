package votes

// Kind selects which vote relation an operation works on. Upvotes and
// downvotes are independent record types with the same shape, so one repo
// serves both, dispatched over this enum.
type Kind int

const (
	Upvote Kind = iota
	Downvote
)

func (k Kind) String() string {
	if k == Downvote {
		return "downvote"
	}
	return "upvote"
}

// table names are fixed by the enum, never derived from request input.
func (k Kind) table() string {
	if k == Downvote {
		return "downvotes"
	}
	return "upvotes"
}

// Vote links a voter to a post. At most one record per (user, post) pair
// exists for each kind, the store enforces it.
type Vote struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	PostID string `json:"postId"`
}
