package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rosterly/attendance-backend-go/internal/config"
	"github.com/rosterly/attendance-backend-go/internal/domain/worker"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
	"github.com/rosterly/attendance-backend-go/internal/repository/mongodb"
)

// Seeds the worker roster from a CSV file with a NAME,EMAIL,PHONE
// header. Attendance entries snapshot the roster at creation time, so
// this only affects dates materialized afterwards.
func main() {
	rosterPath := flag.String("roster", "roster.csv", "path to the roster CSV file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer func() {
		_ = db.Close(context.Background())
	}()

	workers, err := readRoster(*rosterPath)
	if err != nil {
		log.Fatal("Failed to read roster: ", err)
	}

	workerRepo := mongodb.NewWorkerRepository(db)
	ctx := context.Background()
	for _, w := range workers {
		created, err := workerRepo.Insert(ctx, w)
		if err != nil {
			log.Fatalf("Failed to insert worker %s: %v", w.Name, err)
		}
		fmt.Printf("Inserted %s (%s)\n", created.Name, created.ID.Hex())
	}

	fmt.Printf("Seeded %d workers\n", len(workers))
}

func readRoster(path string) ([]worker.Worker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("roster file %s has no data rows", path)
	}

	nameIdx, emailIdx, phoneIdx := -1, -1, -1
	for i, col := range records[0] {
		switch col {
		case "NAME":
			nameIdx = i
		case "EMAIL":
			emailIdx = i
		case "PHONE":
			phoneIdx = i
		}
	}
	if nameIdx < 0 || emailIdx < 0 {
		return nil, fmt.Errorf("roster file %s is missing the NAME or EMAIL column", path)
	}

	var workers []worker.Worker
	for _, row := range records[1:] {
		if row[nameIdx] == "" {
			continue
		}
		w := worker.Worker{
			Name:  row[nameIdx],
			Email: row[emailIdx],
		}
		if phoneIdx >= 0 && phoneIdx < len(row) {
			w.Phone = row[phoneIdx]
		}
		workers = append(workers, w)
	}

	return workers, nil
}
