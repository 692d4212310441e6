// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "flashcards"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultDatabaseDriver   = "postgres"
	DefaultLogLevel         = "info"
	DefaultAuthEnabled      = false
	DefaultAITimeout        = 5 * time.Second
	DefaultOrderMaxTokens   = 1000
	DefaultHintMaxTokens    = 150
	DefaultExplainMaxTokens = 200
	DefaultFrontMaxLen      = 100
)

// Gemini API の接続先 (genai SDK の BaseURL / APIVersion)
const (
	DefaultAIEndpoint   = "https://generativelanguage.googleapis.com/"
	DefaultAIAPIVersion = "v1beta"
	DefaultAIModel      = "gemini-1.5-flash"
)
