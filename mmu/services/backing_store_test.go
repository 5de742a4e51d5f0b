package services

import (
	"os"
	"testing"
)

func createStoreFile(t *testing.T, size int) string {
	tempFile, err := os.CreateTemp("", "backing_store_*.bin")
	if err != nil {
		t.Fatalf("Expected temp file to be created, got %v", err)
	}

	content := make([]byte, size)
	for i := range content {
		content[i] = byte(i)
	}
	if _, err := tempFile.Write(content); err != nil {
		t.Fatalf("Expected temp file to be written, got %v", err)
	}
	tempFile.Close()

	return tempFile.Name()
}

func TestInitBackingStore_MissingFile(t *testing.T) {
	if _, err := InitBackingStore("no_existe.bin", 256); err == nil {
		t.Errorf("Expected an error for a missing backing store file")
	}
}

func TestBackingStore_ReadPage(t *testing.T) {
	path := createStoreFile(t, 4*16)
	defer os.Remove(path)

	store, err := InitBackingStore(path, 16)
	if err != nil {
		t.Fatalf("Expected backing store to open, got %v", err)
	}
	defer store.Close()

	content, err := store.ReadPage(2)
	if err != nil {
		t.Fatalf("Expected page 2 to be read, got %v", err)
	}
	if len(content) != 16 {
		t.Errorf("Expected 16 bytes, got %d", len(content))
	}
	if content[0] != 32 || content[15] != 47 {
		t.Errorf("Expected page 2 to span bytes 32..47, got %d..%d", content[0], content[15])
	}
}

func TestBackingStore_ReadFirstAndLastPage(t *testing.T) {
	path := createStoreFile(t, 4*16)
	defer os.Remove(path)

	store, err := InitBackingStore(path, 16)
	if err != nil {
		t.Fatalf("Expected backing store to open, got %v", err)
	}
	defer store.Close()

	first, err := store.ReadPage(0)
	if err != nil || first[0] != 0 {
		t.Errorf("Expected page 0 to start at byte 0, got err=%v", err)
	}

	last, err := store.ReadPage(3)
	if err != nil || last[15] != 63 {
		t.Errorf("Expected page 3 to end at byte 63, got err=%v", err)
	}
}

func TestBackingStore_ReadPageBeyondFile(t *testing.T) {
	path := createStoreFile(t, 4*16)
	defer os.Remove(path)

	store, err := InitBackingStore(path, 16)
	if err != nil {
		t.Fatalf("Expected backing store to open, got %v", err)
	}
	defer store.Close()

	if _, err := store.ReadPage(4); err == nil {
		t.Errorf("Expected an error reading a page beyond the end of the file")
	}
}

func TestBackingStore_ShortPageIsAnError(t *testing.T) {
	path := createStoreFile(t, 40)
	defer os.Remove(path)

	store, err := InitBackingStore(path, 16)
	if err != nil {
		t.Fatalf("Expected backing store to open, got %v", err)
	}
	defer store.Close()

	// La página 2 arranca en el offset 32 pero el archivo solo tiene 40 bytes
	if _, err := store.ReadPage(2); err == nil {
		t.Errorf("Expected an error for a truncated page")
	}
}
