// Package redislib stores ranked frequency lists in Redis as JSON values
package redislib

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gomodule/redigo/redis"

	"goZipf/freq"
)

// ErrNotFound is returned when no list is stored under the requested key
var ErrNotFound = errors.New("redislib: key not found")

// ConnGetter hands out connections; *redis.Pool is one
type ConnGetter interface {
	Get() redis.Conn
}

// NewPool returns a pool of connections to the Redis server at addr
func NewPool(addr string) *redis.Pool {
	return &redis.Pool{
		// Max number of idle connections in the pool
		MaxIdle: 8,
		// Max number of connections
		MaxActive: 64,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
	}
}

// Store reads and writes ranked lists
type Store struct {
	conns ConnGetter
}

func New(conns ConnGetter) *Store {
	return &Store{conns: conns}
}

// Ping tests connectivity for redis (PONG should be returned)
func (s *Store) Ping() error {
	conn := s.conns.Get()
	defer conn.Close()

	pong, err := redis.String(conn.Do("PING"))
	if err != nil {
		return err
	}
	if pong != "PONG" {
		return fmt.Errorf("redislib: unexpected PING reply %q", pong)
	}
	return nil
}

// SaveRanked stores the ranked list under key, replacing any previous value
func (s *Store) SaveRanked(key string, ranked []freq.Entry) error {
	if ranked == nil {
		ranked = []freq.Entry{}
	}
	value, err := json.Marshal(ranked)
	if err != nil {
		return err
	}

	conn := s.conns.Get()
	defer conn.Close()

	_, err = conn.Do("SET", key, value)
	return err
}

// LoadRanked returns the ranked list stored under key
func (s *Store) LoadRanked(key string) ([]freq.Entry, error) {
	conn := s.conns.Get()
	defer conn.Close()

	value, err := redis.Bytes(conn.Do("GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var ranked []freq.Entry
	if err := json.Unmarshal(value, &ranked); err != nil {
		return nil, fmt.Errorf("redislib: %s: %w", key, err)
	}
	return ranked, nil
}

// Exists checks if a list has been previously stored under key
func (s *Store) Exists(key string) (bool, error) {
	conn := s.conns.Get()
	defer conn.Close()

	return redis.Bool(conn.Do("EXISTS", key))
}
