package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// annotationsCtxKey はリクエスト完了ログへ追記する属性の格納先キー
type annotationsCtxKey struct{}

// redactedBody は本文を記録しないパスで body の代わりに出力する値
const redactedBody = "[REDACTED]"

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名 (小文字)。
var sensitiveHeaders = map[string]bool{
	"authorization":  true,
	"cookie":         true, // リクエスト
	"set-cookie":     true, // レスポンス
	"x-api-key":      true,
	"x-goog-api-key": true, // Gemini
}

// annotations はハンドラが完了ログ用に積む属性。
type annotations struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

func (a *annotations) add(attrs ...slog.Attr) {
	a.mu.Lock()
	a.attrs = append(a.attrs, attrs...)
	a.mu.Unlock()
}

func (a *annotations) snapshot() []any {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]any, 0, len(a.attrs))
	for _, attr := range a.attrs {
		out = append(out, attr)
	}
	return out
}

// statusRecorder はステータスコードと送信バイト数を記録します。
// 本文は capture が true のときだけ溜める (Debug かつ伏せ字対象外のパス)。
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	bytesOut   int
	capture    bool
	body       bytes.Buffer
}

func (sr *statusRecorder) WriteHeader(statusCode int) {
	sr.statusCode = statusCode
	sr.ResponseWriter.WriteHeader(statusCode)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.capture {
		sr.body.Write(b)
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytesOut += n
	return n, err
}

// LoggingMiddleware はリクエストID付きのロガーをコンテキストに格納し、完了時に概要ログを出します。
//
// redactPaths に前方一致するパス (例: /api/v1/ai/) はカード本文やモデルの出力を含むため、
// Debug レベルでもボディを記録せずサイズだけを出します。
// Annotate で積まれた属性 (ai_optimized など) は "Request completed" にまとめて付きます。
func LoggingMiddleware(logger *slog.Logger, redactPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			// --- 準備: リクエスト単位のロガーと注記の入れ物 ---
			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			notes := &annotations{}
			ctx := WithLogger(r.Context(), requestLogger)
			ctx = context.WithValue(ctx, annotationsCtxKey{}, notes)
			r = r.WithContext(ctx)

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(ctx, slog.LevelDebug)
			redacted := hasAnyPrefix(r.URL.Path, redactPaths)

			var reqBody []byte
			reqBytes := 0
			if debug && r.Body != nil {
				reqBody, _ = io.ReadAll(r.Body)
				reqBytes = len(reqBody)
				r.Body = io.NopCloser(bytes.NewReader(reqBody))
			}

			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK, capture: debug && !redacted}

			next.ServeHTTP(sr, r)

			// --- 完了ログ ---
			logLevel := slog.LevelInfo
			switch {
			case sr.statusCode >= 500:
				logLevel = slog.LevelError
			case sr.statusCode >= 400:
				logLevel = slog.LevelWarn
			}

			fields := []any{
				"status", sr.statusCode,
				"latency_ms", float64(time.Since(startTime).Nanoseconds()) / 1e6,
				"bytes_out", sr.bytesOut,
			}
			fields = append(fields, notes.snapshot()...)
			requestLogger.Log(ctx, logLevel, "Request completed", fields...)

			if !debug {
				return
			}
			reqLogged, respLogged := string(reqBody), sr.body.String()
			if redacted {
				reqLogged, respLogged = redactedBody, redactedBody
			}
			requestLogger.Debug("Request detail",
				"headers", formatHeaders(r.Header),
				"body", reqLogged,
				"bytes_in", reqBytes,
			)
			requestLogger.Debug("Response detail",
				"status", sr.statusCode,
				"headers", formatHeaders(sr.Header()),
				"body", respLogged,
			)
		})
	}
}

// Annotate はリクエスト完了ログに属性を追記します。LoggingMiddleware の外では何もしません。
func Annotate(ctx context.Context, attrs ...slog.Attr) {
	if notes, ok := ctx.Value(annotationsCtxKey{}).(*annotations); ok {
		notes.add(attrs...)
	}
}

// WithLogger はロガーを格納したコンテキストを返します。CLIコマンドやテストからも使います。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// formatHeaders はヘッダーをログ用に1行ずつ連結し、機密ヘッダーを伏せます。
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}
