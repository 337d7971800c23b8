package checksum

import (
	"testing"
)

func TestGenerateRowHash(t *testing.T) {
	gen := NewGenerator()

	hash1 := gen.GenerateRowHash("nba", "Stephen Curry", "$40,231,758", 2019)
	hash2 := gen.GenerateRowHash("nba", "Stephen Curry", "$40,231,758", 2019)

	// Хеш должен быть детерминированным
	if hash1 != hash2 {
		t.Errorf("Hash not deterministic: %s != %s", hash1, hash2)
	}

	// Хеш должен быть 64 символа (SHA256 hex)
	if len(hash1) != 64 {
		t.Errorf("Hash wrong length: %d, expected 64", len(hash1))
	}

	// Другой сезон - другой хеш
	hash3 := gen.GenerateRowHash("nba", "Stephen Curry", "$40,231,758", 2018)
	if hash1 == hash3 {
		t.Errorf("Hash should change when season changes")
	}
}

func TestGenerateRowHashFields(t *testing.T) {
	gen := NewGenerator()

	// Имя и зарплата не взаимозаменяемы
	if gen.GenerateRowHash("nba", "A", "1", 2019) == gen.GenerateRowHash("nba", "1", "A", 2019) {
		t.Errorf("Hash should change when name and salary are swapped")
	}

	if gen.GenerateRowHash("nba", "A", "1", 2019) == gen.GenerateRowHash("other", "A", "1", 2019) {
		t.Errorf("Hash should change when site changes")
	}
}
