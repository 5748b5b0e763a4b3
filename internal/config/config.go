package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（5000）

	JWTSecret string // JWT署名シークレット

	GoEnv          string // development/production
	CatalogBaseURL string // 外部カタログAPI（DummyJSON）
}

// Loadは環境変数から設定を組み立てる。
// DB接続値は infra/db 側で読む（POSTGRES_* / DATABASE_URL）。
func Load() Config {
	return Config{
		Port:           getenv("PORT", "5000"),
		JWTSecret:      getenv("JWT_SECRET", "shoppyglobe_secret"),
		GoEnv:          getenv("GO_ENV", "development"),
		CatalogBaseURL: getenv("CATALOG_BASE_URL", "https://dummyjson.com"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
