package handlers

import (
	"net/http"

	"redditserver/pkg/posts"
	"redditserver/pkg/session"
	"redditserver/pkg/subreddits"
	"redditserver/pkg/user"
	"redditserver/pkg/votes"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	PostsRepo      PostsRepo
	UsersRepo      UsersRepo
	SubredditsRepo SubredditsRepo
	VotesRepo      VotesRepo
	Logger         *zap.SugaredLogger
}

type PostsRepo interface {
	GetAll() ([]*posts.Post, error)
	GetByID(id string) (*posts.Post, error)
	GetByParentID(parentID string) ([]*posts.Post, error)
	Add(post *posts.Post) (string, error)
	Update(id string, title, text *string) error
	Delete(id string) (bool, error)
}

// PostResponse is a post with its relations eagerly attached, the shape
// GET /posts serves.
type PostResponse struct {
	*posts.Post
	User      *user.User            `json:"user"`
	Subreddit *subreddits.Subreddit `json:"subreddit"`
	Upvotes   []*votes.Vote         `json:"upvotes"`
	Downvotes []*votes.Vote         `json:"downvotes"`
	Children  []*posts.Post         `json:"children"`
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	postsDB, err := h.PostsRepo.GetAll()
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}

	result := make([]*PostResponse, 0, len(postsDB))
	for _, p := range postsDB {
		resp, err := h.buildPostResponse(p)
		if err != nil {
			internalError(w, h.Logger, err)
			return
		}
		result = append(result, resp)
	}

	WriteSuccess(w, "posts", result)
}

func (h *PostHandler) buildPostResponse(p *posts.Post) (*PostResponse, error) {
	author, err := h.UsersRepo.GetByID(p.UserID)
	if err != nil {
		return nil, err
	}

	subreddit, err := h.SubredditsRepo.GetByID(p.SubredditID)
	if err != nil {
		return nil, err
	}

	upvotes, err := h.VotesRepo.GetByPostID(votes.Upvote, p.ID)
	if err != nil {
		return nil, err
	}

	downvotes, err := h.VotesRepo.GetByPostID(votes.Downvote, p.ID)
	if err != nil {
		return nil, err
	}

	children, err := h.PostsRepo.GetByParentID(p.ID)
	if err != nil {
		return nil, err
	}

	return &PostResponse{
		Post:      p,
		User:      author,
		Subreddit: subreddit,
		Upvotes:   upvotes,
		Downvotes: downvotes,
		Children:  children,
	}, nil
}

type CreatePostReq struct {
	Text        *string `json:"text"`
	Title       *string `json:"title"`
	SubredditID *string `json:"subredditId"`
	ParentID    *string `json:"parentId"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostReq
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, "bad request")
		return
	}

	if req.Text == nil || *req.Text == "" {
		WriteError(w, "Text must be provided to create a message!")
		return
	}
	if req.SubredditID == nil || *req.SubredditID == "" {
		WriteError(w, "Subreddit must be provided to create a message!")
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteError(w, "You must be logged in to create a post.")
		return
	}

	subreddit, err := h.SubredditsRepo.GetByID(*req.SubredditID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	if subreddit == nil {
		WriteError(w, "The subreddit was not found.")
		return
	}

	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}
	if req.ParentID != nil {
		parent, err := h.PostsRepo.GetByID(*req.ParentID)
		if err != nil {
			internalError(w, h.Logger, err)
			return
		}
		if parent == nil {
			WriteError(w, "The parent post was not found.")
			return
		}
	}

	// owner is always the token subject, a client-supplied userId is ignored
	post := &posts.Post{
		Text:        *req.Text,
		Title:       req.Title,
		UserID:      sess.User.ID,
		SubredditID: *req.SubredditID,
		ParentID:    req.ParentID,
	}

	id, err := h.PostsRepo.Add(post)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	post.ID = id

	WriteSuccess(w, "post", post)
}

type UpdatePostReq struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteError(w, "You must be logged in to update a post.")
		return
	}

	var req UpdatePostReq
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, "bad request")
		return
	}

	postID := mux.Vars(r)["postId"]
	post, err := h.PostsRepo.GetByID(postID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	if post == nil {
		WriteError(w, "The post was not found.")
		return
	}

	if (req.Title == nil || *req.Title == "") && (req.Text == nil || *req.Text == "") {
		WriteError(w, "Should provide title or text to update a post!")
		return
	}

	if post.UserID != sess.User.ID {
		WriteError(w, "You don't have permission to update this post.")
		return
	}

	if err := h.PostsRepo.Update(postID, req.Title, req.Text); err != nil {
		internalError(w, h.Logger, err)
		return
	}

	updated, err := h.PostsRepo.GetByID(postID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}

	WriteSuccess(w, "post", updated)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteError(w, "You must be logged in to delete a post.")
		return
	}

	postID := mux.Vars(r)["postId"]
	post, err := h.PostsRepo.GetByID(postID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	if post == nil {
		WriteError(w, "The post was not found.")
		return
	}

	if post.UserID != sess.User.ID {
		WriteError(w, "You don't have permission to delete this post.")
		return
	}

	ok, err := h.PostsRepo.Delete(postID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	if !ok {
		WriteError(w, "The post was not found.")
		return
	}

	WriteSuccess(w, "post", post)
}
