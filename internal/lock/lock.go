// Package lock provides a Redis-backed mutual exclusion used to keep periodic jobs single-instance
// across replicas.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotHeld = errors.New("lock not held")

const keyPrefix = "conectando:lock:"

// releaseScript deletes the key only if it still carries our token, so an expired lock taken over
// by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Lease is a held lock.
type Lease struct {
	client *redis.Client
	key    string
	token  string
}

// TryAcquire takes the named lock for ttl. It returns ok=false without error when someone else
// holds it.
func (r *Redis) TryAcquire(ctx context.Context, name string, ttl time.Duration) (*Lease, bool, error) {
	key := keyPrefix + name
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquiring lock %s: %w", name, err)
	}

	if !ok {
		return nil, false, nil
	}

	return &Lease{client: r.client, key: key, token: token}, true, nil
}

// Release frees the lock. It returns ErrNotHeld if the lease expired in the meantime.
func (l *Lease) Release(ctx context.Context) error {
	n, err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Int()
	if err != nil {
		return fmt.Errorf("releasing lock %s: %w", l.key, err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotHeld, l.key)
	}

	return nil
}
