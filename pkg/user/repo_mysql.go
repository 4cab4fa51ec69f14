package user

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// mysqlDupEntry is ER_DUP_ENTRY, returned on a unique key violation.
const mysqlDupEntry = 1062

var ErrUsernameTaken = errors.New("username already exists")

type UserRepoSQL struct {
	db *sql.DB
}

func NewUserRepoSQL(db *sql.DB) *UserRepoSQL {
	return &UserRepoSQL{db: db}
}

func (repo *UserRepoSQL) GetByID(id string) (*User, error) {
	query := "SELECT `id`, `username`, `password` FROM users WHERE id = ?"
	r := repo.db.QueryRow(query, id)

	u := User{}
	err := r.Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (repo *UserRepoSQL) GetByUsername(username string) (*User, error) {
	query := "SELECT `id`, `username`, `password` FROM users WHERE username = ?"
	r := repo.db.QueryRow(query, username)

	u := User{}
	err := r.Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Add inserts the user and returns its id. Concurrent registrations racing on
// the unique username index resolve at the store; the loser gets
// ErrUsernameTaken.
func (repo *UserRepoSQL) Add(user *User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := "INSERT INTO users (`id`, `username`, `password`) VALUES (?, ?, ?)"
	_, err := repo.db.Exec(query, user.ID, user.Username, user.Password)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
		return "", ErrUsernameTaken
	}
	if err != nil {
		return "", err
	}

	return user.ID, nil
}
