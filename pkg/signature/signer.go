package signature

import (
	"container/list"
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"sync"
)

// DefaultCacheSize is the number of distinct secrets a Signer keeps prepared.
const DefaultCacheSize = 16

// Signer signs and verifies like Sign and Verify but reuses HMAC states
// prepared for recently used secrets. It is safe for concurrent use.
type Signer struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

type SignerOption func(*Signer)

// WithCacheSize sets how many secrets are cached. Non-positive sizes are ignored.
func WithCacheSize(n int) SignerOption {
	return func(s *Signer) {
		if n > 0 {
			s.capacity = n
		}
	}
}

type keyEntry struct {
	secret string
	pool   *sync.Pool
}

func NewSigner(opts ...SignerOption) *Signer {
	s := &Signer{
		capacity: DefaultCacheSize,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign returns the base64 encoded HMAC-SHA256 of value under secret.
func (s *Signer) Sign(value string, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}

	pool := s.pool(secret)
	mac := pool.Get().(hash.Hash)
	defer s.release(pool, mac)

	return encode(sum(mac, value)), nil
}

// Verify reports whether sig is the signature of value under secret.
func (s *Signer) Verify(value string, secret []byte, sig string) bool {
	if len(secret) == 0 {
		return false
	}

	pool := s.pool(secret)
	mac := pool.Get().(hash.Hash)
	defer s.release(pool, mac)

	return verify(mac, value, sig)
}

// Len returns the number of cached secrets.
func (s *Signer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eviction.Len()
}

func (s *Signer) release(pool *sync.Pool, mac hash.Hash) {
	mac.Reset()
	pool.Put(mac)
}

// pool returns the HMAC pool for secret, creating it and evicting the least
// recently used secret when the cache is full.
func (s *Signer) pool(secret []byte) *sync.Pool {
	key := string(secret)

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		s.eviction.MoveToFront(elem)
		return elem.Value.(*keyEntry).pool
	}

	entry := &keyEntry{
		secret: key,
		pool: &sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, []byte(key))
			},
		},
	}
	s.items[key] = s.eviction.PushFront(entry)

	if s.eviction.Len() > s.capacity {
		if oldest := s.eviction.Back(); oldest != nil {
			s.eviction.Remove(oldest)
			delete(s.items, oldest.Value.(*keyEntry).secret)
		}
	}
	return entry.pool
}
