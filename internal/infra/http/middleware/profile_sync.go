package middleware

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/supercells/supercells-api/internal/entity"
)

// ProfileStore is the slice of the user repository the sync needs.
type ProfileStore interface {
	Upsert(ctx context.Context, user *entity.User) error
}

// ProfileSync creates the caller's profile row from the session claims on
// their first authenticated request, so the persona lookup always has a
// row to fall back on. The upsert runs once per user per process; a
// failure is logged and retried on the user's next request, never
// blocking the one in flight.
func ProfileSync(store ProfileStore) func(http.Handler) http.Handler {
	var mu sync.Mutex
	synced := make(map[string]bool)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			if session != nil {
				mu.Lock()
				first := !synced[session.UserID]
				synced[session.UserID] = true
				mu.Unlock()

				if first {
					user := &entity.User{ID: session.UserID, Email: session.Email}
					if err := store.Upsert(r.Context(), user); err != nil {
						log.Printf("⚠️ Profile sync for %s failed: %v", session.UserID, err)
						mu.Lock()
						delete(synced, session.UserID)
						mu.Unlock()
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
