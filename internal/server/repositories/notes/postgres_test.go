package notes

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

const (
	upsertQ = `(?s)^\s*INSERT\s+INTO\s+notes\s*\(id,\s*owner_id,\s*title,\s*content,\s*color,\s*created_at\).*ON\s+CONFLICT\s*\(id\).*WHERE\s+notes\.owner_id\s*=\s*EXCLUDED\.owner_id\s+RETURNING\s+id,\s*owner_id,\s*title,\s*content,\s*color,\s*created_at\s*$`
	listQ   = `(?s)^\s*SELECT\s+id,\s*owner_id,\s*title,\s*content,\s*color,\s*created_at\s+FROM\s+notes\s+WHERE\s+owner_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at,\s*id\s*$`
	deleteQ = `(?s)^DELETE\s+FROM\s+notes\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2$`
)

var noteColumns = []string{"id", "owner_id", "title", "content", "color", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(upsertQ).
		WithArgs("n1", "u1", "title", "body", int64(7), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(noteColumns).AddRow("n1", "u1", "title", "body", int64(7), created))

	got, err := repo.Upsert(context.Background(), &models.Note{
		ID: "n1", OwnerID: "u1", Title: "title", Content: "body", Color: 7, CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if !got.CreatedAt.Equal(created) || got.Color != 7 {
		t.Fatalf("unexpected note: %+v", got)
	}
}

func TestPostgresUpsert_ForeignOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).
		WithArgs("n1", "intruder", "t", "c", int64(0), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(noteColumns))

	_, err := repo.Upsert(context.Background(), &models.Note{ID: "n1", OwnerID: "intruder", Title: "t", Content: "c"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestPostgresUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(upsertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Upsert(context.Background(), &models.Note{ID: "n1", OwnerID: "u1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnRows(sqlmock.NewRows(noteColumns).
		AddRow("a", "u1", "t1", "c1", int64(1), now).
		AddRow("b", "u1", "t2", "c2", int64(2), now.Add(time.Second)))

	got, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].Color != 2 {
		t.Fatalf("unexpected notes: %+v", got)
	}
}

func TestPostgresListByOwner_EmptyAndErrors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnRows(sqlmock.NewRows(noteColumns))
	got, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %v, %v", got, err)
	}

	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnError(errors.New("boom"))
	if _, err := repo.ListByOwner(context.Background(), "u1"); err == nil {
		t.Fatal("expected query error")
	}

	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnRows(sqlmock.NewRows(noteColumns).
		AddRow("a", "u1", "t", "c", "not-a-number", time.Now()))
	if _, err := repo.ListByOwner(context.Background(), "u1"); err == nil {
		t.Fatal("expected scan error")
	}

	mock.ExpectQuery(listQ).WithArgs("u1").WillReturnRows(sqlmock.NewRows(noteColumns).
		AddRow("a", "u1", "t", "c", int64(1), time.Now()).
		RowError(0, errors.New("row err")))
	if _, err := repo.ListByOwner(context.Background(), "u1"); err == nil {
		t.Fatal("expected row error")
	}
}

func TestPostgresDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).WithArgs("n1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteQ).WithArgs("n1", "u2").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteQ).WithArgs("n1", "u1").WillReturnError(errors.New("db err"))

	if ok, err := repo.Delete(context.Background(), "n1", "u1"); err != nil || !ok {
		t.Fatalf("owner delete: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Delete(context.Background(), "n1", "u2"); err != nil || ok {
		t.Fatalf("foreign delete: ok=%v err=%v", ok, err)
	}
	if _, err := repo.Delete(context.Background(), "n1", "u1"); err == nil {
		t.Fatal("expected db error")
	}
}
