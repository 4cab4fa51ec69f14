package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"redditserver/pkg/handlers"
	"redditserver/pkg/middleware"
	"redditserver/pkg/posts"
	"redditserver/pkg/session"
	"redditserver/pkg/subreddits"
	"redditserver/pkg/user"
	"redditserver/pkg/votes"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Schema is bootstrapped at startup. Referential integrity and the vote /
// username uniqueness invariants live here, not in application code.
var createSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL,
		username VARCHAR(20) NOT NULL,
		password VARBINARY(100) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY username (username)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS subreddits (
		id CHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		user_id CHAR(36) NOT NULL,
		PRIMARY KEY (id),
		FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS posts (
		id CHAR(36) NOT NULL,
		title VARCHAR(255) NULL,
		text TEXT NOT NULL,
		user_id CHAR(36) NOT NULL,
		subreddit_id CHAR(36) NOT NULL,
		parent_id CHAR(36) NULL,
		PRIMARY KEY (id),
		FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		FOREIGN KEY (subreddit_id) REFERENCES subreddits (id) ON DELETE CASCADE,
		FOREIGN KEY (parent_id) REFERENCES posts (id) ON DELETE CASCADE
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS upvotes (
		id CHAR(36) NOT NULL,
		user_id CHAR(36) NOT NULL,
		post_id CHAR(36) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY user_post (user_id, post_id),
		FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,

	`CREATE TABLE IF NOT EXISTS downvotes (
		id CHAR(36) NOT NULL,
		user_id CHAR(36) NOT NULL,
		post_id CHAR(36) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY user_post (user_id, post_id),
		FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
		FOREIGN KEY (post_id) REFERENCES posts (id) ON DELETE CASCADE
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`,
}

func main() {
	// a .env file is optional, plain environment variables work too
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	app := &Application{
		ServerAddr:            getenv("SERVER_ADDR", "127.0.0.1:3000"),
		MySQLConnectionString: getenv("MYSQL_DSN", "root:qwer1234@tcp(localhost:3306)/redditserver"),
		JWTSecret:             []byte(os.Getenv("JWT_SECRET")),
	}

	app.Run()
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}

	return fallback
}

type Application struct {
	ServerAddr            string
	MySQLConnectionString string
	JWTSecret             []byte

	HTTPServer *http.Server
}

func (a *Application) Run() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	sm, err := session.NewSessionManagerJWT(a.JWTSecret)
	if err != nil {
		panic("JWT_SECRET must be set: " + err.Error())
	}

	db, err := sql.Open("mysql", a.MySQLConnectionString)
	if err != nil {
		panic(err.Error())
	}

	defer db.Close()
	err = db.Ping()
	if err != nil {
		panic(err)
	}

	for _, stmt := range createSchema {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}

	userRepo := user.NewUserRepoSQL(db)
	postsRepo := posts.NewPostsRepoSQL(db)
	subredditsRepo := subreddits.NewSubredditsRepoSQL(db)
	votesRepo := votes.NewVotesRepoSQL(db)

	userHandler := &handlers.UserHandler{
		Sm:     sm,
		Repo:   userRepo,
		Logger: logger,
	}

	postHandler := &handlers.PostHandler{
		PostsRepo:      postsRepo,
		UsersRepo:      userRepo,
		SubredditsRepo: subredditsRepo,
		VotesRepo:      votesRepo,
		Logger:         logger,
	}

	subredditHandler := &handlers.SubredditHandler{
		Repo:   subredditsRepo,
		Logger: logger,
	}

	voteHandler := &handlers.VoteHandler{
		VotesRepo: votesRepo,
		PostsRepo: postsRepo,
		Logger:    logger,
	}

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteSuccess(w, "message", "Welcome to the Reddit server!")
	}).Methods(http.MethodGet)

	r.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/users/token", userHandler.CurrentUser).Methods(http.MethodGet)

	r.HandleFunc("/posts", postHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/posts", postHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/posts/{postId}", postHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/posts/{postId}", postHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/subreddits", subredditHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/subreddits", subredditHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/subreddits/{subredditId}", subredditHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/votes/upvotes/{postId}", voteHandler.CastUpvote).Methods(http.MethodPost)
	r.HandleFunc("/votes/upvotes/{postId}", voteHandler.RetractUpvote).Methods(http.MethodDelete)
	r.HandleFunc("/votes/downvotes/{postId}", voteHandler.CastDownvote).Methods(http.MethodPost)
	r.HandleFunc("/votes/downvotes/{postId}", voteHandler.RetractDownvote).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "No route found.")
	})
	r.MethodNotAllowedHandler = r.NotFoundHandler

	h := middleware.Auth(logger, sm, userRepo, r)
	h = middleware.Log(logger, h)
	h = middleware.Recover(logger, h)

	srv := &http.Server{
		Handler:      h,
		Addr:         a.ServerAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	a.HTTPServer = srv

	logger.Infof("Started server at %s", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}
