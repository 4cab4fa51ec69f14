package posts

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostsRepoSQL struct {
	db *sql.DB
}

func NewPostsRepoSQL(db *sql.DB) *PostsRepoSQL {
	return &PostsRepoSQL{db: db}
}

const selectPost = "SELECT `id`, `title`, `text`, `user_id`, `subreddit_id`, `parent_id` FROM posts"

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(r scanner) (*Post, error) {
	p := Post{}
	var title, parentID sql.NullString

	err := r.Scan(&p.ID, &title, &p.Text, &p.UserID, &p.SubredditID, &parentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if title.Valid {
		p.Title = &title.String
	}
	if parentID.Valid {
		p.ParentID = &parentID.String
	}

	return &p, nil
}

func (repo *PostsRepoSQL) queryPosts(query string, args ...interface{}) ([]*Post, error) {
	rows, err := repo.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (repo *PostsRepoSQL) GetAll() ([]*Post, error) {
	return repo.queryPosts(selectPost)
}

func (repo *PostsRepoSQL) GetByID(id string) (*Post, error) {
	r := repo.db.QueryRow(selectPost+" WHERE id = ?", id)
	return scanPost(r)
}

// GetByParentID returns the direct replies to a post, not the whole subtree.
func (repo *PostsRepoSQL) GetByParentID(parentID string) ([]*Post, error) {
	return repo.queryPosts(selectPost+" WHERE parent_id = ?", parentID)
}

func (repo *PostsRepoSQL) Add(post *Post) (string, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	query := "INSERT INTO posts (`id`, `title`, `text`, `user_id`, `subreddit_id`, `parent_id`) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := repo.db.Exec(query, post.ID, post.Title, post.Text, post.UserID, post.SubredditID, post.ParentID)
	if err != nil {
		return "", err
	}

	return post.ID, nil
}

// Update overwrites only the fields that were supplied, a nil pointer leaves
// the stored value alone.
func (repo *PostsRepoSQL) Update(id string, title, text *string) error {
	query := "UPDATE posts SET `title` = COALESCE(?, `title`), `text` = COALESCE(?, `text`) WHERE id = ?"
	_, err := repo.db.Exec(query, title, text, id)
	return err
}

// Delete reports whether a record was actually removed. Votes and the reply
// subtree go with it, the schema cascades.
func (repo *PostsRepoSQL) Delete(id string) (bool, error) {
	query := "DELETE FROM posts WHERE id = ?"
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
