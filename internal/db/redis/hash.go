package redis

import (
	"context"
	"fmt"
	"slices"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/okrsearch/internal/db"
)

// scanCount is the COUNT hint for each SCAN page.
const scanCount = 100

// HSet writes hash fields in sorted field order.
func (s *Store) HSet(ctx context.Context, key string, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	slices.Sort(names)

	cmd := s.b().Hset().Key(key).FieldValue()
	for _, k := range names {
		cmd = cmd.FieldValue(k, fields[k])
	}
	if err := s.do(ctx, cmd.Build()).Error(); err != nil {
		return &db.Error{Op: db.OpHSet, Err: fmt.Errorf("key %s: %w", key, err)}
	}
	return nil
}

// HGetAllMulti loads several hashes in one DoMulti round trip, in key order.
// A key deleted since it was listed yields an empty map.
func (s *Store) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmds := make(rueidis.Commands, len(keys))
	for i, key := range keys {
		cmds[i] = s.b().Hgetall().Key(key).Build()
	}

	out := make([]map[string]string, len(keys))
	for i, res := range s.client.DoMulti(ctx, cmds...) {
		m, err := res.AsStrMap()
		switch {
		case rueidis.IsRedisNil(err):
			out[i] = map[string]string{}
		case err != nil:
			return nil, &db.Error{Op: db.OpHGetAll, Err: fmt.Errorf("key %s: %w", keys[i], err)}
		default:
			out[i] = m
		}
	}
	return out, nil
}

// Scan lists every key matching pattern. SCAN may return a key more than
// once; duplicates are dropped.
func (s *Store) Scan(ctx context.Context, pattern string) ([]string, error) {
	seen := make(map[string]struct{})
	var keys []string
	var cursor uint64

	for {
		cmd := s.b().Scan().Cursor(cursor).Match(pattern).Count(scanCount).Build()
		res, err := s.do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		for _, k := range res.Elements {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
		if cursor = res.Cursor; cursor == 0 {
			return keys, nil
		}
	}
}
