package config

import (
	"reflect"
	"testing"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_OK", "250")
	t.Setenv("TEST_INT_BAD", "abc")
	t.Setenv("TEST_INT_NEG", "-3")

	if got := getEnvInt("TEST_INT_OK", 100); got != 250 {
		t.Fatalf("got %d, want 250", got)
	}
	if got := getEnvInt("TEST_INT_BAD", 100); got != 100 {
		t.Fatalf("bad value: got %d, want default 100", got)
	}
	if got := getEnvInt("TEST_INT_NEG", 100); got != 100 {
		t.Fatalf("negative value: got %d, want default 100", got)
	}
	if got := getEnvInt("TEST_INT_UNSET", 100); got != 100 {
		t.Fatalf("unset: got %d, want default 100", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" http://a.test , ,http://b.test")
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeEnv(t *testing.T) {
	tests := map[string]string{
		"prod":       "production",
		"Production": "production",
		"staging":    "staging",
		"local":      "local",
		"":           "dev",
		"bogus":      "dev",
	}
	for in, want := range tests {
		if got := normalizeEnv(in); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeStoreType(t *testing.T) {
	if got := normalizeStoreType(" S3 "); got != "s3" {
		t.Fatalf("got %q, want s3", got)
	}
	if got := normalizeStoreType("filesystem"); got != "local" {
		t.Fatalf("got %q, want local", got)
	}
}
