package model

type ContextKey string

const (
	// SubjectKey は認証済みトークンの sub をコンテキストに格納するキー
	SubjectKey ContextKey = "subject"
)
