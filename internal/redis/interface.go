package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on
type Client interface {
	redis.UniversalClient
}

// Pipeliner queues commands for a transactional write
type Pipeliner = redis.Pipeliner

// Tx is the connection handed to a Watch callback
type Tx = redis.Tx

// Nil is returned by reads of missing keys
var Nil = redis.Nil

// TxFailedErr is returned by Watch when a watched key changed before EXEC
var TxFailedErr = redis.TxFailedErr
