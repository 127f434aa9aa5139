package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Hasher turns client IPs into stable, salted identifiers.
type Hasher struct {
	salt string
}

// NewHasher uses salt, or a random one when salt is empty. A random salt
// means unique-visitor counts reset when the process restarts.
func NewHasher(salt string) Hasher {
	if salt == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			log.Fatal("Failed to generate tracking salt:", err)
		}
		salt = hex.EncodeToString(b)
	}
	return Hasher{salt: salt}
}

func (h Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

var untrackedPrefixes = []string{"/static/", "/images/", "/admin", "/health", "/favicon"}

// ShouldTrack reports whether r counts as a visit.
func ShouldTrack(r *http.Request) bool {
	if r.Header.Get("DNT") == "1" {
		return false
	}
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(r.URL.Path, p) {
			return false
		}
	}
	return true
}

// Tracker records visits in the background so requests never wait on the
// database.
type Tracker struct {
	store  *Store
	hasher Hasher
	wg     sync.WaitGroup
}

func NewTracker(store *Store, hasher Hasher) *Tracker {
	return &Tracker{store: store, hasher: hasher}
}

// Middleware records trackable requests. tenantOf names the tenant a request
// resolved to.
func (t *Tracker) Middleware(tenantOf func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ShouldTrack(c.Request) {
			c.Next()
			return
		}

		v := Visit{
			HashedIP:  t.hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			Tenant:    tenantOf(c),
		}
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := t.store.Record(ctx, v); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

func (t *Tracker) Store() *Store {
	return t.store
}

// Wait blocks until in-flight recordings finish.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// Cleanup purges rows past Retention and logs what it removed.
func (t *Tracker) Cleanup(ctx context.Context) {
	n, err := t.store.Cleanup(ctx, Retention)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than %s", n, Retention)
	}
}

// RunCleanup purges expired rows now and then every interval until ctx is
// done.
func (t *Tracker) RunCleanup(ctx context.Context, interval time.Duration) {
	t.Cleanup(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Cleanup(ctx)
		}
	}
}
