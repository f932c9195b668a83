package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/models"
)

func newTestJournalRepo(t *testing.T) (*journalRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &journalRepository{
		db:     &DB{DB: db, logger: l},
		feed:   NewJournalFeed(),
		logger: l,
	}
	t.Cleanup(repo.feed.Close)
	return repo, mock, db
}

func journalColumnNames() []string {
	return []string{
		"id", "content", "mood_type", "image_uris", "created_at",
		"ai_response_enabled", "ai_response", "latitude", "longitude",
		"address", "temperature", "weather_icon", "weather_description",
	}
}

func expectSnapshotQuery(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT(.+)FROM journals(.+)ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(journalColumnNames()))
}

func TestJournalGetByID_Success(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	ctx := context.Background()
	content := "an ordinary tuesday"

	rows := sqlmock.NewRows(journalColumnNames()).
		AddRow(1, content, "happy", `["file:///img/a.jpg"]`, "2026-08-28 21:15:00",
			false, nil, nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT(.+)FROM journals(.+)WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT(.+)FROM tags(.+)INNER JOIN journal_tag_link").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "created_at"}).
			AddRow(3, "work", nil, "2026-08-20 09:00:00"))

	journal, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if journal.ID != 1 {
		t.Errorf("expected ID=1, got %d", journal.ID)
	}
	if journal.Content == nil || *journal.Content != content {
		t.Errorf("unexpected content: %v", journal.Content)
	}
	if journal.Mood != models.MoodHappy {
		t.Errorf("expected mood happy, got %s", journal.Mood)
	}
	if len(journal.ImageURIs) != 1 || journal.ImageURIs[0] != "file:///img/a.jpg" {
		t.Errorf("unexpected image uris: %v", journal.ImageURIs)
	}
	if len(journal.Tags) != 1 || journal.Tags[0].Name != "work" {
		t.Errorf("expected hydrated tags, got %v", journal.Tags)
	}
}

func TestJournalGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.+)FROM journals(.+)WHERE id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
}

func TestJournalAdd_ReturnsGeneratedID(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	content := "first entry"
	req := models.CreateJournalRequest{
		Content:   &content,
		Mood:      models.MoodVeryHappy,
		ImageURIs: []string{"file:///img/a.jpg", "file:///img/b.jpg"},
		CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local),
	}

	mock.ExpectExec("INSERT INTO journals").
		WithArgs(
			&content,
			"veryHappy",
			`["file:///img/a.jpg","file:///img/b.jpg"]`,
			"2026-08-29 10:00:00",
			false,
			nil, nil, nil, nil, nil, nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(7, 1))
	expectSnapshotQuery(mock)

	id, err := repo.Add(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected generated id 7, got %d", id)
	}
}

func TestJournalAdd_EmptyImagesStoredAsNull(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	content := "no pictures today"
	req := models.CreateJournalRequest{
		Content:   &content,
		Mood:      models.MoodNeutral,
		CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local),
	}

	mock.ExpectExec("INSERT INTO journals").
		WithArgs(
			&content,
			"neutral",
			nil,
			"2026-08-29 10:00:00",
			false,
			nil, nil, nil, nil, nil, nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	expectSnapshotQuery(mock)

	if _, err := repo.Add(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJournalUpdate_OnlyProvidedFieldsInSet(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	newContent := "revised text"
	req := models.UpdateJournalRequest{ID: 5, Content: &newContent}

	mock.ExpectQuery("SELECT id FROM journals WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec("UPDATE journals SET content").
		WithArgs(newContent, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectSnapshotQuery(mock)

	affected, err := repo.Update(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}
}

func TestJournalUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM journals WHERE id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), models.UpdateJournalRequest{ID: 404})
	if !errors.Is(err, ErrJournalNotFound) {
		t.Fatalf("expected ErrJournalNotFound, got %v", err)
	}
}

func TestJournalDeleteByID(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM journals").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectSnapshotQuery(mock)

	if err := repo.DeleteByID(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestJournalGetByDate_OrderedAndHydrated(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local)

	rows := sqlmock.NewRows(journalColumnNames()).
		AddRow(2, "evening", "sad", nil, "2026-08-29 21:00:00",
			false, nil, nil, nil, nil, nil, nil, nil).
		AddRow(1, "morning", "happy", nil, "2026-08-29 08:00:00",
			false, nil, nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT(.+)FROM journals(.+)DATE\\(created_at\\)").
		WithArgs("2026-08-29 00:00:00").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT(.+)FROM tags(.+)INNER JOIN journal_tag_link").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "created_at"}))
	mock.ExpectQuery("SELECT(.+)FROM tags(.+)INNER JOIN journal_tag_link").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "created_at"}))

	journals, err := repo.GetByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(journals) != 2 {
		t.Fatalf("expected 2 journals, got %d", len(journals))
	}
	if journals[0].ID != 2 || journals[1].ID != 1 {
		t.Errorf("expected created_at DESC order, got ids %d, %d", journals[0].ID, journals[1].ID)
	}
}
