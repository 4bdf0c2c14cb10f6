package state

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 22, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadPatrons() {
	patrons := []*models.Patron{
		{
			ID:       "patron-1",
			Name:     "Alice",
			BodyMass: 62.5,
			Drinks: []models.Drink{
				{ID: "11000", Name: "Mojito", AlcoholContent: 16, Timestamp: s.testNow},
				{ID: "11000", Name: "Mojito", AlcoholContent: 16, Timestamp: s.testNow},
			},
		},
		{
			ID:       "patron-2",
			Name:     "Bob",
			BodyMass: 80,
			Drinks:   []models.Drink{},
		},
	}

	err := s.repo.SavePatrons(context.Background(), &SavePatronsInput{Patrons: patrons})
	s.Require().NoError(err)

	output, err := s.repo.LoadPatrons(context.Background())
	s.Require().NoError(err)
	s.Require().Len(output.Patrons, 2)

	s.Equal("Alice", output.Patrons[0].Name)
	s.Equal(62.5, output.Patrons[0].BodyMass)
	s.Require().Len(output.Patrons[0].Drinks, 2)
	s.Equal(16.0, output.Patrons[0].Drinks[1].AlcoholContent)
	s.True(s.testNow.Equal(output.Patrons[0].Drinks[0].Timestamp))
	s.Equal("patron-2", output.Patrons[1].ID)
}

func (s *RedisRepositoryTestSuite) TestSavePatronsReplacesSnapshot() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SavePatrons(ctx, &SavePatronsInput{Patrons: []*models.Patron{{ID: "patron-1", Name: "Alice", BodyMass: 60}}}))
	s.Require().NoError(s.repo.SavePatrons(ctx, &SavePatronsInput{}))

	output, err := s.repo.LoadPatrons(ctx)
	s.Require().NoError(err)
	s.Empty(output.Patrons)

	stored, err := s.mr.Get(patronsKey)
	s.Require().NoError(err)
	s.Equal("[]", stored)
}

func (s *RedisRepositoryTestSuite) TestLoadPatronsEmpty() {
	output, err := s.repo.LoadPatrons(context.Background())
	s.Require().NoError(err)
	s.NotNil(output.Patrons)
	s.Empty(output.Patrons)
}

func (s *RedisRepositoryTestSuite) TestLoadPatronsIsNotValidated() {
	// Foreign shapes load without error; unknown fields are dropped
	s.Require().NoError(s.mr.Set(patronsKey, `[{"id":"x","nickname":"Zed","drinks":null}]`))

	output, err := s.repo.LoadPatrons(context.Background())
	s.Require().NoError(err)
	s.Require().Len(output.Patrons, 1)
	s.Equal("x", output.Patrons[0].ID)
	s.Empty(output.Patrons[0].Name)
}

func (s *RedisRepositoryTestSuite) TestLoadPatronsCorrupt() {
	s.Require().NoError(s.mr.Set(patronsKey, "not json"))

	_, err := s.repo.LoadPatrons(context.Background())
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadTheme() {
	ctx := context.Background()

	output, err := s.repo.LoadTheme(ctx)
	s.Require().NoError(err)
	s.Equal(models.ThemeLight, output.Theme)

	s.Require().NoError(s.repo.SaveTheme(ctx, &SaveThemeInput{Theme: models.ThemeDark}))

	output, err = s.repo.LoadTheme(ctx)
	s.Require().NoError(err)
	s.Equal(models.ThemeDark, output.Theme)

	stored, err := s.mr.Get(themeKey)
	s.Require().NoError(err)
	s.Equal("dark", stored)
}

func (s *RedisRepositoryTestSuite) TestLoadThemeUnknownValue() {
	s.Require().NoError(s.mr.Set(themeKey, "solarized"))

	output, err := s.repo.LoadTheme(context.Background())
	s.Require().NoError(err)
	s.Equal(models.ThemeLight, output.Theme)
}

func (s *RedisRepositoryTestSuite) TestAcquireLockExcludesOtherOwners() {
	ctx := context.Background()
	ttl := 30 * time.Second

	s.Require().NoError(s.repo.AcquireLock(ctx, &AcquireLockInput{Owner: "bot", TTL: ttl}))

	// A second process over the same Redis is refused
	err := s.repo.AcquireLock(ctx, &AcquireLockInput{Owner: "api", TTL: ttl})
	s.ErrorIs(err, ErrLocked)

	// The holder extends its own lock
	s.mr.FastForward(20 * time.Second)
	s.Require().NoError(s.repo.AcquireLock(ctx, &AcquireLockInput{Owner: "bot", TTL: ttl}))
	s.Equal(ttl, s.mr.TTL(lockKey))

	// Releasing someone else's lock is a no-op
	s.Require().NoError(s.repo.ReleaseLock(ctx, &ReleaseLockInput{Owner: "api"}))
	owner, err := s.mr.Get(lockKey)
	s.Require().NoError(err)
	s.Equal("bot", owner)

	s.Require().NoError(s.repo.ReleaseLock(ctx, &ReleaseLockInput{Owner: "bot"}))
	s.False(s.mr.Exists(lockKey))
	s.NoError(s.repo.AcquireLock(ctx, &AcquireLockInput{Owner: "api", TTL: ttl}))
}

func (s *RedisRepositoryTestSuite) TestAcquireLockAfterExpiry() {
	ctx := context.Background()

	s.Require().NoError(s.repo.AcquireLock(ctx, &AcquireLockInput{Owner: "bot", TTL: time.Minute}))
	s.mr.FastForward(time.Minute)

	s.NoError(s.repo.AcquireLock(ctx, &AcquireLockInput{Owner: "api", TTL: time.Minute}))
}

func (s *RedisRepositoryTestSuite) TestAcquireLockValidatesInput() {
	ctx := context.Background()

	s.Error(s.repo.AcquireLock(ctx, nil))
	s.Error(s.repo.AcquireLock(ctx, &AcquireLockInput{TTL: time.Second}))
	s.Error(s.repo.AcquireLock(ctx, &AcquireLockInput{Owner: "bot"}))
}

func (s *RedisRepositoryTestSuite) TestLeaseExtendsLock() {
	ctx := context.Background()
	ttl := 30 * time.Millisecond

	lease, err := AcquireLease(ctx, &LeaseConfig{Repository: s.repo, Owner: "bot", TTL: ttl})
	s.Require().NoError(err)

	_, err = AcquireLease(ctx, &LeaseConfig{Repository: s.repo, Owner: "api", TTL: ttl})
	s.ErrorIs(err, ErrLocked)

	// miniredis only ages keys on FastForward, so a full TTL again means the lease extended it
	s.mr.FastForward(20 * time.Millisecond)
	s.Eventually(func() bool {
		return s.mr.TTL(lockKey) > 20*time.Millisecond
	}, time.Second, 5*time.Millisecond)

	s.Require().NoError(lease.Release(ctx))
	s.False(s.mr.Exists(lockKey))
	s.NoError(lease.Release(ctx))
}

func (s *RedisRepositoryTestSuite) TestLeaseReportsTakeover() {
	ctx := context.Background()

	lease, err := AcquireLease(ctx, &LeaseConfig{Repository: s.repo, Owner: "bot", TTL: 30 * time.Millisecond})
	s.Require().NoError(err)

	s.Require().NoError(s.mr.Set(lockKey, "api"))

	select {
	case <-lease.Lost():
	case <-time.After(time.Second):
		s.Fail("lease did not report the takeover")
	}

	// The new holder keeps its lock
	s.Require().NoError(lease.Release(ctx))
	owner, err := s.mr.Get(lockKey)
	s.Require().NoError(err)
	s.Equal("api", owner)
}

func (s *RedisRepositoryTestSuite) TestAcquireLeaseValidatesConfig() {
	ctx := context.Background()

	_, err := AcquireLease(ctx, nil)
	s.Error(err)

	_, err = AcquireLease(ctx, &LeaseConfig{Owner: "bot", TTL: time.Second})
	s.Error(err)

	_, err = AcquireLease(ctx, &LeaseConfig{Repository: s.repo, Owner: "bot"})
	s.Error(err)
}
