package votes

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// mysqlDupEntry is ER_DUP_ENTRY, returned on a unique key violation.
const mysqlDupEntry = 1062

var ErrDuplicate = errors.New("vote already exists")

type VotesRepoSQL struct {
	db *sql.DB
}

func NewVotesRepoSQL(db *sql.DB) *VotesRepoSQL {
	return &VotesRepoSQL{db: db}
}

func (repo *VotesRepoSQL) GetByUserAndPost(kind Kind, userID, postID string) (*Vote, error) {
	query := "SELECT `id`, `user_id`, `post_id` FROM " + kind.table() + " WHERE user_id = ? AND post_id = ?"
	r := repo.db.QueryRow(query, userID, postID)

	v := Vote{}
	err := r.Scan(&v.ID, &v.UserID, &v.PostID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (repo *VotesRepoSQL) GetByPostID(kind Kind, postID string) ([]*Vote, error) {
	query := "SELECT `id`, `user_id`, `post_id` FROM " + kind.table() + " WHERE post_id = ?"
	rows, err := repo.db.Query(query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Vote, 0)
	for rows.Next() {
		v := Vote{}
		if err := rows.Scan(&v.ID, &v.UserID, &v.PostID); err != nil {
			return nil, err
		}
		result = append(result, &v)
	}

	return result, rows.Err()
}

// Add inserts the vote and returns its id. Concurrent casts of the same vote
// race on the (user_id, post_id) unique key; the loser gets ErrDuplicate.
func (repo *VotesRepoSQL) Add(kind Kind, vote *Vote) (string, error) {
	if vote.ID == "" {
		vote.ID = uuid.New().String()
	}

	query := "INSERT INTO " + kind.table() + " (`id`, `user_id`, `post_id`) VALUES (?, ?, ?)"
	_, err := repo.db.Exec(query, vote.ID, vote.UserID, vote.PostID)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
		return "", ErrDuplicate
	}
	if err != nil {
		return "", err
	}

	return vote.ID, nil
}

func (repo *VotesRepoSQL) Delete(kind Kind, id string) (bool, error) {
	query := "DELETE FROM " + kind.table() + " WHERE id = ?"
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
