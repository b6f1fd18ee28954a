package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	clubID := "seed-club-1"
	if _, err := db.Exec("INSERT OR IGNORE INTO clubs (id, name, city, registered) VALUES (?, ?, ?, 1)", clubID, "Seeded Padel Club", "Lyon"); err != nil {
		log.Fatalf("Failed to insert seed club: %s", err)
	}

	playerIDs := make([]string, 0, 8)
	for i := 1; i <= 8; i++ {
		id := fmt.Sprintf("seed-player-%d", i)
		name := fmt.Sprintf("Seeder Player %c", 'A'+i-1)
		if _, err := db.Exec("INSERT OR IGNORE INTO profiles (id, display_name, player_name, club_id) VALUES (?, ?, ?, ?)", id, name, name, clubID); err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", name, err)
		}
		playerIDs = append(playerIDs, id)
	}
	log.Info("Ensured dummy players exist.", "count", len(playerIDs))

	// A boost credit and a review apiece, so the seeded board exercises the
	// bonus paths too.
	for _, id := range playerIDs[:4] {
		if _, err := db.Exec("INSERT OR IGNORE INTO boost_credits (id, user_id, created_at) VALUES (?, ?, ?)", "seed-credit-"+id, id, time.Now().Unix()); err != nil {
			log.Fatalf("Failed to insert boost credit for %s: %s", id, err)
		}
		if _, err := db.Exec("INSERT OR IGNORE INTO reviews (id, user_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?)", "seed-review-"+id, id, 5, "Great app", time.Now().Unix()); err != nil {
			log.Fatalf("Failed to insert review for %s: %s", id, err)
		}
	}

	const batchSize = 100 // Insert 100 matches at a time
	const numMatches = 10000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	matchValues := make([]string, 0, batchSize)
	matchArgs := make([]interface{}, 0, batchSize*7)
	partValues := make([]string, 0, batchSize*4)
	partArgs := make([]interface{}, 0, batchSize*4*5)

	flush := func(done int) {
		stmt := fmt.Sprintf(`
			INSERT INTO matches (id, team1_id, team2_id, winner_team_id, played_at, location_club_id, created_at)
			VALUES %s;`, strings.Join(matchValues, ","))
		if _, err := tx.Exec(stmt, matchArgs...); err != nil {
			tx.Rollback()
			log.Fatalf("Failed to execute match batch insert: %s", err)
		}
		stmt = fmt.Sprintf(`
			INSERT INTO participants (id, match_id, user_id, guest_id, team)
			VALUES %s;`, strings.Join(partValues, ","))
		if _, err := tx.Exec(stmt, partArgs...); err != nil {
			tx.Rollback()
			log.Fatalf("Failed to execute participant batch insert: %s", err)
		}

		matchValues = matchValues[:0]
		matchArgs = matchArgs[:0]
		partValues = partValues[:0]
		partArgs = partArgs[:0]
		log.Info("Inserted batch", "completed", done, "total", numMatches)
	}

	for i := 0; i < numMatches; i++ {
		matchID := uuid.NewString()
		playedAt := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)

		// Pick 4 distinct players, first pair team 1, second pair team 2.
		perm := rand.Perm(len(playerIDs))[:4]
		winner := 1 + rand.Intn(2)

		team1ID := uuid.NewString()
		team2ID := uuid.NewString()
		winnerTeamID := team1ID
		if winner == 2 {
			winnerTeamID = team2ID
		}

		matchValues = append(matchValues, "(?, ?, ?, ?, ?, ?, ?)")
		matchArgs = append(matchArgs,
			matchID,
			team1ID,
			team2ID,
			winnerTeamID,
			playedAt.Unix(),
			clubID,
			playedAt.Unix(),
		)

		for slot, p := range perm {
			team := 1
			if slot >= 2 {
				team = 2
			}
			partValues = append(partValues, "(?, ?, ?, ?, ?)")
			partArgs = append(partArgs, uuid.NewString(), matchID, playerIDs[p], nil, team)
		}

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			flush(i + 1)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)
}
