package services

import (
	"os"
	"testing"
)

func createAddressesFile(t *testing.T, content string) string {
	tempFile, err := os.CreateTemp("", "direcciones_*.txt")
	if err != nil {
		t.Fatalf("Expected temp file to be created, got %v", err)
	}
	if _, err := tempFile.WriteString(content); err != nil {
		t.Fatalf("Expected temp file to be written, got %v", err)
	}
	tempFile.Close()

	return tempFile.Name()
}

func TestLoadAddresses_MixedSeparators(t *testing.T) {
	path := createAddressesFile(t, "16916 62493\n30198\n\t53683 40185\n")
	defer os.Remove(path)

	addresses, err := LoadAddresses(path, 1000)
	if err != nil {
		t.Fatalf("Expected addresses to load, got %v", err)
	}

	if addresses.Size() != 5 {
		t.Errorf("Expected 5 addresses, got %d", addresses.Size())
	}

	expected := []uint32{16916, 62493, 30198, 53683, 40185}
	for i, want := range expected {
		value, err := addresses.Get(i)
		if err != nil {
			t.Fatalf("Expected address %d to exist, got %v", i, err)
		}
		if value != want {
			t.Errorf("Expected address %d to be %d, got %d", i, want, value)
		}
	}
}

func TestLoadAddresses_StopsAtMax(t *testing.T) {
	path := createAddressesFile(t, "1 2 3 4 5")
	defer os.Remove(path)

	addresses, err := LoadAddresses(path, 3)
	if err != nil {
		t.Fatalf("Expected addresses to load, got %v", err)
	}

	if addresses.Size() != 3 {
		t.Errorf("Expected 3 addresses, got %d", addresses.Size())
	}

	value, _ := addresses.Get(2)
	if value != 3 {
		t.Errorf("Expected the first 3 addresses to be kept, got %d last", value)
	}
}

func TestLoadAddresses_InvalidToken(t *testing.T) {
	path := createAddressesFile(t, "12 doce 13")
	defer os.Remove(path)

	if _, err := LoadAddresses(path, 1000); err == nil {
		t.Errorf("Expected an error for a non numeric address")
	}
}

func TestLoadAddresses_NegativeAddress(t *testing.T) {
	path := createAddressesFile(t, "-5")
	defer os.Remove(path)

	if _, err := LoadAddresses(path, 1000); err == nil {
		t.Errorf("Expected an error for a negative address")
	}
}

func TestLoadAddresses_MissingFile(t *testing.T) {
	if _, err := LoadAddresses("no_existe.txt", 1000); err == nil {
		t.Errorf("Expected an error for a missing addresses file")
	}
}

func TestLoadAddresses_EmptyFile(t *testing.T) {
	path := createAddressesFile(t, "")
	defer os.Remove(path)

	addresses, err := LoadAddresses(path, 1000)
	if err != nil {
		t.Fatalf("Expected an empty file to load, got %v", err)
	}
	if !addresses.IsEmpty() {
		t.Errorf("Expected no addresses, got %d", addresses.Size())
	}
}
