// Local development backend. Seeds a small data set and serves the admin API
// the client daemon talks to.
package main

import (
	"log"
	"os"

	"food-delivery-admin/stubserver"
)

func main() {
	dsn := getEnv("STUB_DB_PATH", "stubserver.db")
	secret := getEnv("JWT_SECRET", "dev-secret-change-me")
	port := getEnv("PORT", "8080")

	srv, err := stubserver.New(dsn, []byte(secret))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if os.Getenv("STUB_SKIP_SEED") == "" {
		if err := srv.SeedSampleData(); err != nil {
			// Re-running against an existing database trips unique
			// constraints on the seeded admin; that is fine.
			log.Printf("Seed skipped: %v", err)
		}
	}

	log.Printf("Stub server listening on :%s", port)
	if err := srv.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
