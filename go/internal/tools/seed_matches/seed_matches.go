package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportzhq/sportz/go/internal/dbconfig"
)

// SeedMatch mirrors the fixture JSON layout
type SeedMatch struct {
	Sport     string    `json:"sport"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
}

func main() {
	ctx := context.Background()

	path := "go/internal/assets/matches.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load matches.json
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}
	var seeds []SeedMatch
	if err := json.Unmarshal(data, &seeds); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal matches: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect to DB
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Seed matches
	total, inserted, errs := len(seeds), 0, 0
	for _, m := range seeds {
		_, err := pool.Exec(ctx, `
            INSERT INTO matches (
              sport, home_team, away_team, status,
              start_time, end_time, home_score, away_score
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        `, m.Sport, m.HomeTeam, m.AwayTeam, m.Status,
			m.StartTime, m.EndTime, m.HomeScore, m.AwayScore)
		if err != nil {
			errs++
			continue
		}
		inserted++
	}
	fmt.Printf(
		"Matches seed: total=%d inserted=%d errors=%d\n",
		total, inserted, errs,
	)
}
