package jobs

import (
	"log"

	"github.com/vibequiz/backend/storage"
)

// PurgeExpiredEntries reclaims expired records from the in-process store.
// Redis expires keys itself, so this job is only scheduled in local mode.
func PurgeExpiredEntries(store *storage.MemoryStore) {
	removed := store.Purge()
	if removed == 0 {
		return
	}
	log.Printf("Purged %d expired entries from local store", removed)
}
