package database

import "testing"

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "stocks", SSLMode: "disable"}

	want := "host=db port=5432 user=u password=p dbname=stocks sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	wantURL := "postgres://u:p@db:5432/stocks?sslmode=disable"
	if got := cfg.URL(); got != wantURL {
		t.Errorf("URL() = %q, want %q", got, wantURL)
	}
}
