package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go_flashcard_study/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerateRequest は偽サーバー側で受け取るリクエストの必要部分だけを写したもの
type fakeGenerateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		MaxOutputTokens int `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewGeminiClient(context.Background(), config.AIConfig{
		Endpoint:   srv.URL + "/",
		APIVersion: "v1beta",
		Model:      "test-model",
		APIKey:     apiKey,
		Timeout:    2 * time.Second,
	}, srv.Client())
	require.NoError(t, err)
	return client
}

func TestGeminiClient_Complete(t *testing.T) {
	t.Run("正常系: candidates の先頭テキストを返す", func(t *testing.T) {
		var gotReq fakeGenerateRequest
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
			assert.Empty(t, r.URL.Query().Get("key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"[2, 1, 2]"}]}}]}`))
		}, "secret")

		text, err := client.Complete(context.Background(), "order these", 1000)
		require.NoError(t, err)
		assert.Equal(t, "[2, 1, 2]", text)
		require.Len(t, gotReq.Contents, 1)
		assert.Equal(t, "order these", gotReq.Contents[0].Parts[0].Text)
		assert.Equal(t, 1000, gotReq.GenerationConfig.MaxOutputTokens)
	})

	t.Run("異常系: 2xx以外は StatusError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
		}, "secret")

		_, err := client.Complete(context.Background(), "p", 10)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "quota exceeded")
	})

	t.Run("異常系: テキストフィールド欠落", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[]}`))
		}, "secret")

		_, err := client.Complete(context.Background(), "p", 10)
		assert.ErrorIs(t, err, ErrMissingContent)
	})

	t.Run("異常系: JSONでないレスポンス", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway</html>`))
		}, "secret")

		_, err := client.Complete(context.Background(), "p", 10)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrMissingContent))
	})

	t.Run("異常系: APIキー未設定なら呼び出さない", func(t *testing.T) {
		called := false
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		}, "")

		_, err := client.Complete(context.Background(), "p", 10)
		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.False(t, called)
	})

	t.Run("異常系: コンテキストのタイムアウト", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}, "secret")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := client.Complete(ctx, "p", 10)
		require.Error(t, err)
		assert.Equal(t, context.DeadlineExceeded, ctx.Err())
	})
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "上限以内はそのまま", in: "quota", n: 10, want: "quota"},
		{name: "ASCIIはバイト数で切る", in: "abcdef", n: 3, want: "abc"},
		// "あ" は3バイト。4バイト目で切るとルーンが割れるので手前で止める
		{name: "マルチバイトの途中では切らない", in: "ああ", n: 4, want: "あ"},
		{name: "境界ちょうど", in: "ああ", n: 3, want: "あ"},
		{name: "先頭ルーンも収まらない", in: "あ", n: 2, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateUTF8(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}

	t.Run("StatusError の本文も上限内で有効なUTF-8", func(t *testing.T) {
		long := strings.Repeat("エラー", 200)
		got := truncateUTF8(long, maxErrorBodyBytes)
		assert.LessOrEqual(t, len(got), maxErrorBodyBytes)
		assert.True(t, utf8.ValidString(got))
	})
}
