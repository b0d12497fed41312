package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// knownUsers remembers user ids confirmed to exist so read-only history
// endpoints can skip the existence query. Balances are never cached.
type knownUsers struct {
	lru *expirable.LRU[string, struct{}]
}

func newKnownUsers(size int, ttl time.Duration) *knownUsers {
	return &knownUsers{lru: expirable.NewLRU[string, struct{}](size, nil, ttl)}
}

func (k *knownUsers) Has(userID string) bool {
	_, ok := k.lru.Get(userID)
	return ok
}

func (k *knownUsers) Add(userID string) {
	k.lru.Add(userID, struct{}{})
}

func (k *knownUsers) Forget(userID string) {
	k.lru.Remove(userID)
}
