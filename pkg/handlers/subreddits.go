package handlers

import (
	"net/http"

	"redditserver/pkg/session"
	"redditserver/pkg/subreddits"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type SubredditHandler struct {
	Repo   SubredditsRepo
	Logger *zap.SugaredLogger
}

type SubredditsRepo interface {
	GetAll() ([]*subreddits.Subreddit, error)
	GetByID(id string) (*subreddits.Subreddit, error)
	Add(subreddit *subreddits.Subreddit) (string, error)
	Delete(id string) (bool, error)
}

func (h *SubredditHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.Repo.GetAll()
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}

	WriteSuccess(w, "subreddits", result)
}

type CreateSubredditReq struct {
	Name *string `json:"name"`
}

func (h *SubredditHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubredditReq
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, "bad request")
		return
	}

	if req.Name == nil || *req.Name == "" {
		WriteError(w, "Name must be provided to create a subreddit!")
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteError(w, "You must be logged in to create a subreddit.")
		return
	}

	subreddit := &subreddits.Subreddit{Name: *req.Name, UserID: sess.User.ID}
	id, err := h.Repo.Add(subreddit)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	subreddit.ID = id

	WriteSuccess(w, "subreddit", subreddit)
}

func (h *SubredditHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteError(w, "You must be logged in to delete a subreddit.")
		return
	}

	subredditID := mux.Vars(r)["subredditId"]
	subreddit, err := h.Repo.GetByID(subredditID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	if subreddit == nil {
		WriteError(w, "The subreddit was not found.")
		return
	}

	if subreddit.UserID != sess.User.ID {
		WriteError(w, "You don't have permission to delete this subreddit.")
		return
	}

	ok, err := h.Repo.Delete(subredditID)
	if err != nil {
		internalError(w, h.Logger, err)
		return
	}
	if !ok {
		WriteError(w, "The subreddit was not found.")
		return
	}

	WriteSuccess(w, "subreddit", subreddit)
}
