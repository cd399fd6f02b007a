package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache holds one parsed value and one sync.Once per config type.
type typeCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newTypeCache() *typeCache {
	return &typeCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

func (c *typeCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *typeCache) put(key string, v any) {
	c.mu.Lock()
	c.values[key] = v
	c.mu.Unlock()
}

func (c *typeCache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[key]
	if !ok {
		o = new(sync.Once)
		c.onces[key] = o
	}
	return o
}

func (c *typeCache) forget(key string) {
	c.mu.Lock()
	delete(c.values, key)
	delete(c.onces, key)
	c.mu.Unlock()
}

func (c *typeCache) reset() {
	c.mu.Lock()
	c.values = make(map[string]any)
	c.onces = make(map[string]*sync.Once)
	c.mu.Unlock()
}

var (
	cache = newTypeCache()

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// loadDefaultEnv reads ./.env once per process. A missing file is not an error.
func loadDefaultEnv() error {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()

	if defaultEnvLoaded {
		return nil
	}
	defaultEnvLoaded = true

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// LoadEnv loads variables from the given .env files into the process
// environment. Later files override earlier ones and existing variables.
// Without paths it loads ./.env if present, without overriding.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return loadDefaultEnv()
	}

	defaultEnvMu.Lock()
	defaultEnvLoaded = true
	defaultEnvMu.Unlock()

	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` struct tags.
// Each type is parsed once; later calls return the cached copy.
//
//	var s config.Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := loadDefaultEnv(); err != nil {
		return err
	}

	key := typeKey[T]()
	if cached, ok := cache.get(key); ok {
		*v = cached.(T)
		return nil
	}

	var parseErr error
	cache.once(key).Do(func() {
		var fresh T
		if err := env.Parse(&fresh); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}
		cache.put(key, fresh)
	})
	if parseErr != nil {
		// Let the next call retry, e.g. after the missing variable is set.
		cache.forget(key)
		return parseErr
	}

	cached, ok := cache.get(key)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value for T and parses it again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	cache.forget(typeKey[T]())
	return Load(v)
}

// ResetCache drops every cached config.
func ResetCache() {
	cache.reset()
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
