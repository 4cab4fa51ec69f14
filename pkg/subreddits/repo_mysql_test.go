package subreddits

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var s = &Subreddit{
	ID:     "c9d05e48-21c5-4b79-9a3b-8cbf37a6f6d2",
	Name:   "golang",
	UserID: "8a6b2705-9f9c-4f36-9e5f-0f2e5a3a7a11",
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *SubredditsRepoSQL) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	return db, mock, NewSubredditsRepoSQL(db)
}

func TestGetAll(t *testing.T) {
	db, mock, repo := newMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "user_id"}).
		AddRow(s.ID, s.Name, s.UserID)

	mock.
		ExpectQuery("SELECT `id`, `name`, `user_id` FROM subreddits").
		WillReturnRows(rows)

	res, err := repo.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if len(res) != 1 || !reflect.DeepEqual(res[0], s) {
		t.Fatalf("expected [%v], but was %v", s, res)
	}

	// error
	mock.
		ExpectQuery("SELECT `id`, `name`, `user_id` FROM subreddits").
		WillReturnError(errors.New("db_error"))

	_, err = repo.GetAll()
	if err == nil {
		t.Fatalf("expected error but was nil")
	}
}

func TestGetByID(t *testing.T) {
	db, mock, repo := newMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "user_id"}).
		AddRow(s.ID, s.Name, s.UserID)

	mock.
		ExpectQuery("SELECT `id`, `name`, `user_id` FROM subreddits WHERE").
		WithArgs(s.ID).
		WillReturnRows(rows)

	res, err := repo.GetByID(s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if !reflect.DeepEqual(res, s) {
		t.Fatalf("expected %v, but was %v", s, res)
	}

	// no rows
	mock.
		ExpectQuery("SELECT `id`, `name`, `user_id` FROM subreddits WHERE").
		WithArgs(s.ID).
		WillReturnError(sql.ErrNoRows)

	res, err = repo.GetByID(s.ID)
	if res != nil || err != nil {
		t.Fatalf("wrong result, expected both nil but was %v, %v", res, err)
	}
}

func TestAdd(t *testing.T) {
	db, mock, repo := newMock(t)
	defer db.Close()

	mock.
		ExpectExec("INSERT INTO subreddits").
		WithArgs(s.ID, s.Name, s.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Add(s)
	if err != nil {
		t.Fatalf("unexpected error while adding subreddit: %v", err.Error())
	}
	if id != s.ID {
		t.Fatalf("expected %v but was %v", s.ID, id)
	}

	// error
	mock.
		ExpectExec("INSERT INTO subreddits").
		WithArgs(s.ID, s.Name, s.UserID).
		WillReturnError(errors.New("db_error"))

	_, err = repo.Add(s)
	if err == nil {
		t.Fatalf("expected error but was nil")
	}
}

func TestDelete(t *testing.T) {
	db, mock, repo := newMock(t)
	defer db.Close()

	mock.
		ExpectExec("DELETE FROM subreddits WHERE").
		WithArgs(s.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Delete(s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if !ok {
		t.Fatalf("expected true but was false")
	}

	// nothing removed
	mock.
		ExpectExec("DELETE FROM subreddits WHERE").
		WithArgs(s.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.Delete(s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if ok {
		t.Fatalf("expected false but was true")
	}
}
