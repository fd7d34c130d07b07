package cache

import (
	"context"
	"sort"
	"strconv"
	"time"

	"catermatch/config"
	"catermatch/internal/domain/entity"
	"catermatch/internal/domain/repository"
	"catermatch/internal/errors"

	"github.com/redis/go-redis/v9"
)

// Each alias lives in a hash; a sorted set scored by use count backs listing.
// Both scripts touch the hash and the index together so a lookup and its
// counter bump are a single atomic step on the server.

var touchScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return false
end
local n = redis.call('HINCRBY', KEYS[1], 'use_count', 1)
redis.call('HSET', KEYS[1], 'last_used', ARGV[2])
redis.call('ZADD', KEYS[2], tostring(n), ARGV[1])
return redis.call('HGETALL', KEYS[1])
`)

var upsertScript = redis.NewScript(`
local n
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('HSET', KEYS[1],
    'alias', ARGV[1], 'city', ARGV[2], 'province', ARGV[3],
    'latitude', ARGV[4], 'longitude', ARGV[5], 'added_by', ARGV[6],
    'created_at', ARGV[7], 'last_used', ARGV[7], 'use_count', '1')
  n = 1
else
  n = redis.call('HINCRBY', KEYS[1], 'use_count', 1)
  redis.call('HSET', KEYS[1], 'last_used', ARGV[7])
  if ARGV[8] == '1' then
    redis.call('HSET', KEYS[1],
      'city', ARGV[2], 'province', ARGV[3],
      'latitude', ARGV[4], 'longitude', ARGV[5], 'added_by', ARGV[6])
  end
end
redis.call('ZADD', KEYS[2], tostring(n), ARGV[1])
return redis.call('HGETALL', KEYS[1])
`)

type learnedLocationStore struct {
	rdb    redis.Cmdable
	prefix string
	now    func() time.Time
}

// NewLearnedLocationStore creates a Redis learned location store.
func NewLearnedLocationStore(rdb *redis.Client, cfg *config.Config) repository.LearnedLocationRepository {
	return newLearnedLocationStore(rdb, keyPrefix(cfg.Redis))
}

func newLearnedLocationStore(rdb redis.Cmdable, prefix string) *learnedLocationStore {
	return &learnedLocationStore{rdb: rdb, prefix: prefix, now: time.Now}
}

func (s *learnedLocationStore) aliasKey(alias string) string {
	return s.prefix + "learned:" + alias
}

func (s *learnedLocationStore) indexKey() string {
	return s.prefix + "learned_index"
}

func (s *learnedLocationStore) TouchLearnedLocation(ctx context.Context, alias string) (*entity.LearnedLocation, error) {
	fields, err := touchScript.Run(ctx, s.rdb,
		[]string{s.aliasKey(alias), s.indexKey()},
		alias, formatTime(s.now()),
	).StringSlice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrLearnedLocationNotFound
		}

		return nil, errors.Wrap(err, "touch learned location")
	}

	return decodeLearnedLocation(pairsToMap(fields))
}

func (s *learnedLocationStore) UpsertLearnedLocation(ctx context.Context, location *entity.LearnedLocation) (*entity.LearnedLocation, error) {
	override := "0"
	if location.AddedBy.Overrides() {
		override = "1"
	}

	fields, err := upsertScript.Run(ctx, s.rdb,
		[]string{s.aliasKey(location.Alias), s.indexKey()},
		location.Alias,
		location.City,
		location.Province,
		formatFloat(location.Latitude),
		formatFloat(location.Longitude),
		string(location.AddedBy),
		formatTime(s.now()),
		override,
	).StringSlice()
	if err != nil {
		return nil, errors.Wrap(err, "upsert learned location")
	}

	return decodeLearnedLocation(pairsToMap(fields))
}

func (s *learnedLocationStore) ListLearnedLocations(ctx context.Context, limit int) ([]*entity.LearnedLocation, error) {
	aliases, err := s.topAliases(ctx, limit)
	if err != nil {
		return nil, err
	}

	if len(aliases) == 0 {
		return []*entity.LearnedLocation{}, nil
	}

	pipe := s.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(aliases))
	for i, alias := range aliases {
		cmds[i] = pipe.HGetAll(ctx, s.aliasKey(alias))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "load learned locations")
	}

	out := make([]*entity.LearnedLocation, 0, len(aliases))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}

		loc, err := decodeLearnedLocation(fields)
		if err != nil {
			return nil, err
		}
		out = append(out, loc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UseCount != out[j].UseCount {
			return out[i].UseCount > out[j].UseCount
		}

		return out[i].Alias < out[j].Alias
	})

	return out, nil
}

// topAliases returns at most limit aliases ordered by use count, then alias.
// ZREVRANGE breaks ties by reverse member order, so every member tied with
// the last one in range is fetched and the cut is made after re-sorting.
func (s *learnedLocationStore) topAliases(ctx context.Context, limit int) ([]string, error) {
	var (
		members []redis.Z
		err     error
	)

	if limit <= 0 {
		members, err = s.rdb.ZRevRangeWithScores(ctx, s.indexKey(), 0, -1).Result()
	} else {
		var boundary []redis.Z
		boundary, err = s.rdb.ZRevRangeWithScores(ctx, s.indexKey(), int64(limit)-1, int64(limit)-1).Result()
		if err != nil {
			return nil, errors.Wrap(err, "list learned location index")
		}

		if len(boundary) == 0 {
			members, err = s.rdb.ZRevRangeWithScores(ctx, s.indexKey(), 0, -1).Result()
		} else {
			members, err = s.rdb.ZRangeByScoreWithScores(ctx, s.indexKey(), &redis.ZRangeBy{
				Min: strconv.FormatFloat(boundary[0].Score, 'f', -1, 64),
				Max: "+inf",
			}).Result()
		}
	}

	if err != nil {
		return nil, errors.Wrap(err, "list learned location index")
	}

	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			return members[i].Score > members[j].Score
		}

		return members[i].Member.(string) < members[j].Member.(string)
	})

	if limit > 0 && len(members) > limit {
		members = members[:limit]
	}

	aliases := make([]string, len(members))
	for i, m := range members {
		aliases[i] = m.Member.(string)
	}

	return aliases, nil
}

func pairsToMap(pairs []string) map[string]string {
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}

	return m
}

func decodeLearnedLocation(fields map[string]string) (*entity.LearnedLocation, error) {
	lat, err := strconv.ParseFloat(fields["latitude"], 64)
	if err != nil {
		return nil, errors.Wrap(err, "decode latitude")
	}

	lon, err := strconv.ParseFloat(fields["longitude"], 64)
	if err != nil {
		return nil, errors.Wrap(err, "decode longitude")
	}

	useCount, err := strconv.ParseInt(fields["use_count"], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "decode use_count")
	}

	return &entity.LearnedLocation{
		Alias:     fields["alias"],
		City:      fields["city"],
		Province:  fields["province"],
		Latitude:  lat,
		Longitude: lon,
		UseCount:  useCount,
		LastUsed:  parseTime(fields["last_used"]),
		AddedBy:   entity.AddedBy(fields["added_by"]),
		CreatedAt: parseTime(fields["created_at"]),
	}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}

	return t
}
