// Package cache implementa o cache em memória com TTL e leitura de dados expirados
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Chaves usadas pelos fetchers
const (
	metricsKeyPrefix  = "metrics-"
	versionsKeyPrefix = "versions-"
	BulkVersionsKey   = "versions-bulk"
)

func MetricsKey(clientID string) string {
	return metricsKeyPrefix + clientID
}

func VersionsKey(clientID string) string {
	return versionsKeyPrefix + clientID
}

// entry guarda o dado com o momento da captura e seu tempo de vida
type entry struct {
	data      any
	timestamp time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.timestamp) > e.ttl
}

// Store é o cache do processo. Não há persistência entre reinicializações.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   clockwork.Clock
}

// New cria um cache vazio. Um clock nil usa o relógio real.
func New(clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Store{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Get retorna o dado se ainda estiver dentro do TTL; entradas expiradas são removidas
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}

	if e.expired(s.clock.Now()) {
		delete(s.entries, key)
		return nil, false
	}

	return e.data, true
}

// Peek retorna o dado e se ele ainda está dentro do TTL, sem remover entradas expiradas.
// Os fetchers usam Peek para que o dado expirado continue disponível como fallback.
func (s *Store) Peek(key string) (data any, fresh bool, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false, false
	}
	return e.data, !e.expired(s.clock.Now()), true
}

// GetStale retorna o dado mesmo expirado. Usado apenas como fallback de erro.
func (s *Store) GetStale(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Set sobrescreve a entrada incondicionalmente
func (s *Store) Set(key string, data any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		data:      data,
		timestamp: s.clock.Now(),
		ttl:       ttl,
	}
}

// Has informa se a chave existe, independente da validade
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[key]
	return ok
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// Clear remove todas as entradas
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entry)
}

// Timestamp retorna o momento em que a entrada foi gravada
func (s *Store) Timestamp(key string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return time.Time{}, false
	}
	return e.timestamp, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
