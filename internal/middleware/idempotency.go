package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
	idempotencyMaxBody   = 1 << 20
)

type capturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyKey returns the redis key a POST with the given Idempotency-Key
// and body is cached under. A reused key with a different body is a
// different request.
func IdempotencyKey(path, subject, key string, body []byte) string {
	sum := sha256.Sum256(body)
	return fmt.Sprintf("idemp:%s:%s:%s:%s", path, subject, key, hex.EncodeToString(sum[:16]))
}

// Idempotency replays the first successful response for a repeated
// Idempotency-Key and answers 409 while the first request is still running.
// Redis failures let the request through.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost || rdb == nil {
			c.Next()
			return
		}

		subject := c.GetString(ContextUserIDValidated)
		if subject == "" {
			subject = c.ClientIP()
		}
		body, err := readBody(c.Request)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Corpo da requisição inválido", nil)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		cacheKey := IdempotencyKey(c.FullPath(), subject, idempKey, body)
		lockKey := cacheKey + ":lock"

		cached, err := rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			c.Header("Idempotent-Replayed", "true")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}
		if err != redis.Nil {
			zap.L().Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "Requisição em processamento, aguarde.", nil)
			c.Abort()
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		// the request context may already be cancelled here
		bg := context.WithoutCancel(ctx)
		status := writer.Status()
		if status >= 200 && status < 300 {
			if err := rdb.Set(bg, cacheKey, writer.body.String(), idempotencyResultTTL).Err(); err != nil {
				zap.L().Warn("idempotency store failed", zap.Error(err))
			}
		}
		if err := rdb.Del(bg, lockKey).Err(); err != nil {
			zap.L().Warn("idempotency unlock failed", zap.Error(err))
		}
	}
}

// readBody drains the request body and puts it back for the handler.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, idempotencyMaxBody))
	_ = r.Body.Close()
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
