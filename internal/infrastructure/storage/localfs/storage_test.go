package localfs

import (
	"bytes"
	"testing"
)

func TestSaveCreatesIntermediateFolders(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	key := "B_Experiencia/B.4/B4_001.jpg"
	if err := s.Save(key, []byte("jpeg bytes")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Read(key)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.Equal(got, []byte("jpeg bytes")) {
		t.Fatalf("unexpected contents: %q", got)
	}
}
