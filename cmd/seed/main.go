package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	"trivia-api/internal/config"

	_ "github.com/lib/pq"
)

func main() {
	file := flag.String("file", "trivia.psql", "SQL file to execute")
	flag.Parse()

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("failed to open database connection: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("cannot reach database %s: %v", cfg.DBName, err)
	}

	if err := executeSQLFile(db, *file); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("executed %s against %s", *file, cfg.DBName)
}

func executeSQLFile(db *sql.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = db.Exec(string(content))
	return err
}
