package state

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// LeaseConfig holds configuration for a writer lease
type LeaseConfig struct {
	// Repository holds the lock
	Repository Repository

	// Owner identifies this process
	Owner string

	// TTL is how long the lock outlives a crashed owner; it is extended every TTL/3
	TTL time.Duration
}

// Lease keeps the writer lock for one process so that only one controller saves snapshots
type Lease struct {
	repo  Repository
	owner string
	ttl   time.Duration

	stop     chan struct{}
	done     chan struct{}
	lost     chan struct{}
	stopOnce sync.Once
}

// AcquireLease takes the writer lock and keeps extending it until Release is called.
// Returns ErrLocked when another process holds the lock.
func AcquireLease(ctx context.Context, cfg *LeaseConfig) (*Lease, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Repository == nil {
		return nil, errors.New("repository cannot be nil")
	}
	if cfg.TTL < time.Millisecond {
		return nil, errors.New("lease ttl must be at least a millisecond")
	}

	if err := cfg.Repository.AcquireLock(ctx, &AcquireLockInput{
		Owner: cfg.Owner,
		TTL:   cfg.TTL,
	}); err != nil {
		return nil, err
	}

	l := &Lease{
		repo:  cfg.Repository,
		owner: cfg.Owner,
		ttl:   cfg.TTL,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
		lost:  make(chan struct{}),
	}
	go l.keepAlive()

	return l, nil
}

// Lost is closed when another process has taken the lock
func (l *Lease) Lost() <-chan struct{} {
	return l.lost
}

// Release stops extending the lock and drops it if this process still holds it
func (l *Lease) Release(ctx context.Context) error {
	l.stopOnce.Do(func() { close(l.stop) })
	<-l.done

	return l.repo.ReleaseLock(ctx, &ReleaseLockInput{Owner: l.owner})
}

func (l *Lease) keepAlive() {
	defer close(l.done)

	interval := l.ttl / 3
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			err := l.repo.AcquireLock(ctx, &AcquireLockInput{
				Owner: l.owner,
				TTL:   l.ttl,
			})
			cancel()

			if errors.Is(err, ErrLocked) {
				log.Printf("State lock taken over by another process")
				close(l.lost)
				return
			}
			if err != nil {
				log.Printf("Error extending state lock: %v", err)
			}
		}
	}
}
