package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/readersbay/bookclub/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if _, err := Open(dir, nil); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", dir)
	}
}

func TestEnsureFilesCreatesEmptyArrays(t *testing.T) {
	s := newTestStore(t)

	if err := s.EnsureFiles(); err != nil {
		t.Fatalf("EnsureFiles failed: %v", err)
	}

	for _, file := range CollectionFiles {
		data, err := os.ReadFile(filepath.Join(s.DataDir(), file))
		if err != nil {
			t.Errorf("expected %s to exist: %v", file, err)
			continue
		}
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("expected %s to hold an empty array, got %q", file, data)
		}
	}
}

func TestEnsureFilesKeepsExistingData(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveBooks([]types.Book{{ID: 1, Title: "Dune", Author: "Herbert"}}); err != nil {
		t.Fatalf("SaveBooks failed: %v", err)
	}
	if err := s.EnsureFiles(); err != nil {
		t.Fatalf("EnsureFiles failed: %v", err)
	}

	books := s.LoadBooks()
	if len(books) != 1 || books[0].Title != "Dune" {
		t.Errorf("EnsureFiles clobbered books.json: %+v", books)
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	s := newTestStore(t)

	if got := s.LoadReviews(); len(got) != 0 {
		t.Errorf("expected empty collection for missing file, got %+v", got)
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.DataDir(), UsersFile)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if got := s.LoadUsers(); len(got) != 0 {
		t.Errorf("expected empty collection for corrupt file, got %+v", got)
	}
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	s := newTestStore(t)

	// The middle record has a string id and cannot decode into a User.
	raw := `[
  {"id": 1, "name": "ana", "password": "pw"},
  {"id": "two", "name": "bad", "password": "pw"},
  {"id": 3, "name": "carla", "password": "pw"}
]`
	path := filepath.Join(s.DataDir(), UsersFile)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	users := s.LoadUsers()
	if len(users) != 2 {
		t.Fatalf("expected 2 decodable records, got %d", len(users))
	}
	if users[0].Name != "ana" || users[1].Name != "carla" {
		t.Errorf("unexpected survivors: %+v", users)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	reviews := []types.Review{
		{ID: 1, BookID: 1, UserID: 10, Rating: 5, Text: "great", Date: "2026-08-28"},
		{ID: 3, BookID: 2, UserID: 10, Rating: 2, Text: "", Date: "2026-08-28"},
		{ID: 5, BookID: 1, UserID: 11, Rating: 4, Text: "solid", Date: "2026-08-27"},
	}
	if err := s.SaveReviews(reviews); err != nil {
		t.Fatalf("SaveReviews failed: %v", err)
	}

	got := s.LoadReviews()
	if len(got) != len(reviews) {
		t.Fatalf("expected %d reviews, got %d", len(reviews), len(got))
	}
	for i := range reviews {
		if got[i] != reviews[i] {
			t.Errorf("record %d: expected %+v, got %+v", i, reviews[i], got[i])
		}
	}
}

func TestSaveWritesPrettyPrintedArray(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveBooks([]types.Book{{ID: 1, Title: "Dune", Author: "Herbert", Genre: "sci-fi", Year: 1965}}); err != nil {
		t.Fatalf("SaveBooks failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.DataDir(), BooksFile))
	if err != nil {
		t.Fatalf("read books.json: %v", err)
	}
	if !strings.Contains(string(data), "\n  {") {
		t.Errorf("expected indented output, got %q", data)
	}
	if !json.Valid(data) {
		t.Errorf("books.json is not valid JSON: %q", data)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveShares(nil); err != nil {
		t.Fatalf("SaveShares failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.DataDir(), SharesFile))
	if err != nil {
		t.Fatalf("read shares.json: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected [], got %q", data)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveUsers([]types.User{{ID: 1, Name: "ana", Password: "pw"}}); err != nil {
		t.Fatalf("SaveUsers failed: %v", err)
	}

	entries, err := os.ReadDir(s.DataDir())
	if err != nil {
		t.Fatalf("read data dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveUsers([]types.User{{ID: 1, Name: "ana", Password: "pw"}, {ID: 2, Name: "bo", Password: "pw"}}); err != nil {
		t.Fatalf("first SaveUsers failed: %v", err)
	}
	if err := s.SaveUsers([]types.User{{ID: 2, Name: "bo", Password: "pw"}}); err != nil {
		t.Fatalf("second SaveUsers failed: %v", err)
	}

	users := s.LoadUsers()
	if len(users) != 1 || users[0].ID != 2 {
		t.Errorf("expected the second save to replace the file, got %+v", users)
	}
}
