package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("mongodbUrl", "mongodb://test:27017")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	os.Setenv("staffIds", "111, 222,333")
	defer func() {
		os.Unsetenv("mongodbUrl")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
		os.Unsetenv("staffIds")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.MongoDBURL != "mongodb://test:27017" {
		t.Errorf("MongoDBURL = %v, want %v", config.MongoDBURL, "mongodb://test:27017")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}

	if len(config.Staff) != 3 {
		t.Fatalf("Staff = %v, want 3 entries", config.Staff)
	}

	if config.Staff[1] != "222" {
		t.Errorf("Staff[1] = %v, want 222 (whitespace should be trimmed)", config.Staff[1])
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestIsStaff(t *testing.T) {
	resetForTesting()
	os.Setenv("staffIds", "123456789012345678,987654321098765432")
	defer os.Unsetenv("staffIds")

	config, _ := Load()

	if !config.IsStaff("123456789012345678") {
		t.Error("IsStaff() should return true for an allowlisted id")
	}

	if config.IsStaff("000000000000000000") {
		t.Error("IsStaff() should return false for an unknown id")
	}

	if config.IsStaff("") {
		t.Error("IsStaff() should return false for an empty id")
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestIsValidTag(t *testing.T) {
	if !IsValidTag("Música") {
		t.Error("IsValidTag() should accept a vocabulary tag")
	}

	if IsValidTag("musica") {
		t.Error("IsValidTag() is exact match only; lowercase variant must be rejected")
	}

	if IsValidTag("NoExiste") {
		t.Error("IsValidTag() should reject tags outside the vocabulary")
	}
}

func TestDefaultValues(t *testing.T) {
	// Clear all environment variables
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("PORT")
	os.Unsetenv("enviroment")
	os.Unsetenv("staffIds")

	resetForTesting()
	config, _ := Load()

	if config.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL default = %v, want %v", config.MongoDBURL, "mongodb://localhost:27017")
	}

	if config.DBName != "PancyList" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "PancyList")
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}

	if len(config.Staff) != 0 {
		t.Errorf("Staff default = %v, want empty", config.Staff)
	}
}
