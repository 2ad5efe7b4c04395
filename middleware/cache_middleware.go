package middleware

import (
	"bufio"
	"bytes"
	"errors"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/service/cache"
	"github.com/x-xyz/xionmarket/service/cache/provider"
)

const (
	HeaderXCache = "X-Cache"

	cacheMiddlewarePfx = "httpCacheMiddleware"
)

// cachedResponse is what a cache hit replays.
type cachedResponse struct {
	Status int         `json:"status"`
	Body   []byte      `json:"body"`
	Header http.Header `json:"header"`
}

// recorder copies the body into buf while it is written out.
type recorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *recorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recorder) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *recorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

// cacheKey hashes the url with its query values sorted, so ?a=1&b=2 and ?b=2&a=1 share an entry.
func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, vals := range params {
		sort.Strings(vals)
	}
	hash := fnv.New64a()
	io.WriteString(hash, u.Path)
	io.WriteString(hash, "?")
	io.WriteString(hash, params.Encode())
	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp serves repeated GETs of the same url from store until ttl passes.
// Only responses below 400 are kept.
func CacheHttp(store provider.Provider, ttl time.Duration) echo.MiddlewareFunc {
	if store == nil {
		panic("CacheHttp needs a cache provider")
	}

	cacheService := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   cacheMiddlewarePfx,
		Cache: store,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Get("ctx").(ctx.Ctx)
			key := cacheKey(c.Request().URL)

			hit := cachedResponse{}
			err := cacheService.Get(ctx, key, &hit)
			if err == nil {
				header := c.Response().Header()
				for k, v := range hit.Header {
					header[k] = v
				}
				header.Set(HeaderXCache, "hit")
				c.Response().WriteHeader(hit.Status)
				_, err := c.Response().Write(hit.Body)
				return err
			}
			if !errors.Is(err, cache.ErrNotFound) {
				ctx.WithFields(log.Fields{"err": err, "key": key}).Warn("cacheService.Get failed")
			}

			rec := &recorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			if rec.status == 0 || rec.status >= http.StatusBadRequest {
				return nil
			}
			miss := cachedResponse{
				Status: rec.status,
				Body:   rec.buf.Bytes(),
				Header: rec.Header().Clone(),
			}
			if err := cacheService.Set(ctx, key, miss); err != nil {
				ctx.WithFields(log.Fields{"err": err, "key": key}).Warn("cacheService.Set failed")
			}
			return nil
		}
	}
}
