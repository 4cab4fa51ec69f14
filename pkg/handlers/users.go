package handlers

import (
	"net/http"
	"time"

	"redditserver/pkg/session"
	"redditserver/pkg/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// loginError covers both a missing account and a wrong password, so the
// response never reveals which usernames exist.
const loginError = "Incorrect username or password"

type UserHandler struct {
	Sm     session.SessionManager
	Repo   UsersRepo
	Logger *zap.SugaredLogger
}

type UsersRepo interface {
	GetByID(id string) (*user.User, error)
	GetByUsername(username string) (*user.User, error)
	Add(user *user.User) (string, error)
}

type AuthReq struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r *AuthReq) validate() error {
	usr := &Validator{field: "username", value: r.Username}
	if err := usr.Required(); err != nil {
		return err
	}
	if err := usr.MinLength(3); err != nil {
		return err
	}
	if err := usr.MaxLength(20); err != nil {
		return err
	}

	pwd := &Validator{field: "password", value: r.Password}
	if err := pwd.Required(); err != nil {
		return err
	}

	return pwd.Empty()
}

func (u *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req AuthReq
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, "bad request")
		return
	}

	if err := req.validate(); err != nil {
		WriteError(w, err.Error())
		return
	}

	existing, err := u.Repo.GetByUsername(*req.Username)
	if err != nil {
		internalError(w, u.Logger, err)
		return
	}
	if existing != nil {
		WriteError(w, "Username already exists, please login.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(w, u.Logger, err)
		return
	}

	account := &user.User{Username: *req.Username, Password: hash}
	id, err := u.Repo.Add(account)
	if err == user.ErrUsernameTaken {
		// lost the race against a concurrent registration
		WriteError(w, "Username already exists, please login.")
		return
	}
	if err != nil {
		internalError(w, u.Logger, err)
		return
	}
	account.ID = id

	u.writeAuthResponse(w, account)
}

func (u *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req AuthReq
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, "bad request")
		return
	}

	if err := req.validate(); err != nil {
		WriteError(w, err.Error())
		return
	}

	account, err := u.Repo.GetByUsername(*req.Username)
	if err != nil {
		internalError(w, u.Logger, err)
		return
	}
	if account == nil {
		WriteError(w, loginError)
		return
	}

	if bcrypt.CompareHashAndPassword(account.Password, []byte(*req.Password)) != nil {
		WriteError(w, loginError)
		return
	}

	u.writeAuthResponse(w, account)
}

// CurrentUser serves GET /users/token: the account behind the presented
// bearer token, password omitted.
func (u *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		WriteError(w, "You must be logged in.")
		return
	}

	account, err := u.Repo.GetByID(sess.User.ID)
	if err != nil {
		internalError(w, u.Logger, err)
		return
	}
	if account == nil {
		WriteError(w, "You must be logged in.")
		return
	}

	WriteSuccess(w, "user", account)
}

func (u *UserHandler) writeAuthResponse(w http.ResponseWriter, account *user.User) {
	expiresAt := time.Now().Add(tokenLifetime).Unix()
	token, err := u.Sm.Create(&session.User{ID: account.ID, Username: account.Username}, expiresAt)
	if err != nil {
		internalError(w, u.Logger, err)
		return
	}

	WriteSuccess(w, "token", token)
}
