// Package cache keeps decoded values, such as marketplace configs, in a byte level provider.
package cache

import (
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/service/cache/provider"
)

var (
	// ErrNotFound is the provider miss, so either can be matched
	ErrNotFound     = provider.ErrNotFound
	ErrTypeMismatch = errors.New("getter value does not match container")
)

// Loader produces the value for a missed key. It returns a pointer of the container's type.
type Loader func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

type Service interface {
	// GetByFunc fills container from the provider, or from load on a miss
	GetByFunc(c ctx.Ctx, key string, container interface{}, load Loader) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	// Ttl of every entry, 0 keeps entries until evicted
	Ttl time.Duration
	// Pfx namespaces keys, e.g. "config" gives "config:<marketplace>"
	Pfx   string
	Cache provider.Provider
	// json when nil
	Serialize   Serializer
	Deserialize Deserializer
}

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}

	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}

	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
}

func (im *impl) key(key string) string {
	if im.pfx == "" {
		return key
	}
	return im.pfx + ":" + key
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, load Loader) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("Get failed")
		return err
	}

	val, err := load()
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("load failed")
		return err
	}
	loaded := reflect.ValueOf(val)
	if loaded.Kind() != reflect.Ptr || loaded.IsNil() || loaded.Type() != reflect.TypeOf(container) {
		return xerrors.Errorf("%s: %T into %T: %w", key, val, container, ErrTypeMismatch)
	}

	// a failed write only costs the next lookup a reload
	if err := im.Set(c, key, val); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("Set failed")
	}
	reflect.ValueOf(container).Elem().Set(loaded.Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = im.key(key)

	if val, _, err := im.cache.Get(c, key); errors.Is(err, provider.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return err
	} else if err := im.deserialize(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}

	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = im.key(key)

	if val, err := im.serialize(value); err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	} else if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}

	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = im.key(key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Del failed")
		return err
	}

	return nil
}
