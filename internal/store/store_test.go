package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every new connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return NewSQLStore(db)
}

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, "test:")
}

func backends(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": setupSQLStore(t),
		"redis":  setupRedisStore(t),
	}
}

func TestStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			_, ok, err := s.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, LikesKey("a"), "1"))
			require.NoError(t, s.Set(ctx, LikesKey("a"), "2"))

			v, ok, err := s.Get(ctx, LikesKey("a"))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "2", v)

			require.NoError(t, s.Remove(ctx, LikesKey("a")))
			require.NoError(t, s.Remove(ctx, LikesKey("a")))

			_, ok, err = s.Get(ctx, LikesKey("a"))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRedisStore_UsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "memeshare:")
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), KeyUserProfile, `{"name":"x"}`))

	got, err := mr.Get("memeshare:userProfile")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, got)
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Close())

	_, _, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), "k", "v"), ErrClosed)
}

func TestLoadJSON(t *testing.T) {
	ctx := context.Background()
	def := []string{"default"}

	tests := []struct {
		name      string
		raw       *string
		want      []string
		wantFound bool
	}{
		{name: "missing", raw: nil, want: def},
		{name: "empty", raw: strPtr("  "), want: def},
		{name: "null", raw: strPtr("null"), want: def},
		{name: "malformed", raw: strPtr("[1,"), want: def},
		{name: "wrong shape", raw: strPtr(`{"a":1}`), want: def},
		{name: "valid", raw: strPtr(`["x","y"]`), want: []string{"x", "y"}, wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore()
			if tt.raw != nil {
				require.NoError(t, s.Set(ctx, "k", *tt.raw))
			}

			got, found, err := LoadJSON(ctx, s, "k", def)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadJSON_PropagatesBackendError(t *testing.T) {
	s := NewMemoryStore()
	s.Close()

	_, _, err := LoadJSON(context.Background(), s, "k", 0)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLoadInt(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	n, err := LoadInt(ctx, s, "c")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for raw, want := range map[string]int{"7": 7, " 3 ": 3, "abc": 0, "-4": 0} {
		require.NoError(t, s.Set(ctx, "c", raw))
		n, err := LoadInt(ctx, s, "c")
		require.NoError(t, err)
		assert.Equal(t, want, n, "raw=%q", raw)
	}

	require.NoError(t, SaveInt(ctx, s, "c", 12))
	raw, _, _ := s.Get(ctx, "c")
	assert.Equal(t, "12", raw)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "likes-abc", LikesKey("abc"))
	assert.Equal(t, "comments-abc", CommentsKey("abc"))
}

func strPtr(s string) *string { return &s }
