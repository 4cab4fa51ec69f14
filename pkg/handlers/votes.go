package handlers

import (
	"errors"
	"net/http"

	"redditserver/pkg/session"
	"redditserver/pkg/votes"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type VoteHandler struct {
	VotesRepo VotesRepo
	PostsRepo PostsRepo
	Logger    *zap.SugaredLogger
}

type VotesRepo interface {
	GetByUserAndPost(kind votes.Kind, userID, postID string) (*votes.Vote, error)
	GetByPostID(kind votes.Kind, postID string) ([]*votes.Vote, error)
	Add(kind votes.Kind, vote *votes.Vote) (string, error)
	Delete(kind votes.Kind, id string) (bool, error)
}

func (h *VoteHandler) CastUpvote(w http.ResponseWriter, r *http.Request) {
	h.cast(w, r, votes.Upvote)
}

func (h *VoteHandler) CastDownvote(w http.ResponseWriter, r *http.Request) {
	h.cast(w, r, votes.Downvote)
}

func (h *VoteHandler) RetractUpvote(w http.ResponseWriter, r *http.Request) {
	h.retract(w, r, votes.Upvote)
}

func (h *VoteHandler) RetractDownvote(w http.ResponseWriter, r *http.Request) {
	h.retract(w, r, votes.Downvote)
}

// cast creates one vote record of the given kind. An upvote and a downvote
// on the same post coexist; a second vote of the same kind does not.
func (h *VoteHandler) cast(w http.ResponseWriter, r *http.Request, kind votes.Kind) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteError(w, "You must be logged in to vote for a post")
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

	vote := &votes.Vote{UserID: sess.User.ID, PostID: post.ID}
	id, err := h.VotesRepo.Add(kind, vote)
	if errors.Is(err, votes.ErrDuplicate) {
		WriteError(w, "You have already cast this vote.")
		return
	}
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	vote.ID = id

	WriteSuccess(w, "vote", vote)
}

func (h *VoteHandler) retract(w http.ResponseWriter, r *http.Request, kind votes.Kind) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteError(w, "You must be logged in to delete a vote")
		return
	}

	postID := mux.Vars(r)["postId"]
	vote, err := h.VotesRepo.GetByUserAndPost(kind, sess.User.ID, postID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	if vote == nil {
		WriteError(w, "You don't have a vote to delete")
		return
	}

	ok, err := h.VotesRepo.Delete(kind, vote.ID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	if !ok {
		WriteError(w, "You don't have a vote to delete")
		return
	}

	WriteSuccess(w, "vote", vote)
}
