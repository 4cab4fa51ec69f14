package subreddits

import (
	"database/sql"

	"github.com/google/uuid"
)

type SubredditsRepoSQL struct {
	db *sql.DB
}

func NewSubredditsRepoSQL(db *sql.DB) *SubredditsRepoSQL {
	return &SubredditsRepoSQL{db: db}
}

func (repo *SubredditsRepoSQL) GetAll() ([]*Subreddit, error) {
	query := "SELECT `id`, `name`, `user_id` FROM subreddits"
	rows, err := repo.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Subreddit, 0)
	for rows.Next() {
		s := Subreddit{}
		if err := rows.Scan(&s.ID, &s.Name, &s.UserID); err != nil {
			return nil, err
		}
		result = append(result, &s)
	}

	return result, rows.Err()
}

func (repo *SubredditsRepoSQL) GetByID(id string) (*Subreddit, error) {
	query := "SELECT `id`, `name`, `user_id` FROM subreddits WHERE id = ?"
	r := repo.db.QueryRow(query, id)

	s := Subreddit{}
	err := r.Scan(&s.ID, &s.Name, &s.UserID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (repo *SubredditsRepoSQL) Add(subreddit *Subreddit) (string, error) {
	if subreddit.ID == "" {
		subreddit.ID = uuid.New().String()
	}

	query := "INSERT INTO subreddits (`id`, `name`, `user_id`) VALUES (?, ?, ?)"
	_, err := repo.db.Exec(query, subreddit.ID, subreddit.Name, subreddit.UserID)
	if err != nil {
		return "", err
	}

	return subreddit.ID, nil
}

// Delete reports whether a record was actually removed. Posts in the
// subreddit go with it, the schema cascades.
func (repo *SubredditsRepoSQL) Delete(id string) (bool, error) {
	query := "DELETE FROM subreddits WHERE id = ?"
	r, err := repo.db.Exec(query, id)
	if err != nil {
		return false, err
	}

	affected, err := r.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
