// internal/config/config.go
//
// 以 Viper 讀取服務設定：可選的 .env 檔 + 環境變數 + 預設值。

package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 為服務所有設定值。
type Config struct {
	ServerPort              string `mapstructure:"SERVER_PORT"`
	AdminName               string `mapstructure:"ADMIN_NAME"`
	AdminEmail              string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword           string `mapstructure:"ADMIN_PASSWORD"`
	RecordIncomingTransfers bool   `mapstructure:"RECORD_INCOMING_TRANSFERS"`
	RequestTimeoutSeconds   int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	CORSAllowedOrigins      string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

const (
	defaultPort           = "8080"
	defaultTimeoutSeconds = 60
	defaultCORSOrigins    = "https://*,http://*"
)

// LoadConfig 自 path 讀取 .env（不存在亦可），再以環境變數覆寫。
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", defaultPort)
	viper.SetDefault("ADMIN_NAME", "admin")
	viper.SetDefault("ADMIN_EMAIL", "admin@bank.com")
	viper.SetDefault("ADMIN_PASSWORD", "1234")
	viper.SetDefault("RECORD_INCOMING_TRANSFERS", false)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultTimeoutSeconds)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)

	// Unmarshal 只看得到已知的 key，明確綁定確保環境變數生效
	for _, key := range []string{
		"SERVER_PORT", "ADMIN_NAME", "ADMIN_EMAIL", "ADMIN_PASSWORD",
		"RECORD_INCOMING_TRANSFERS", "REQUEST_TIMEOUT_SECONDS", "CORS_ALLOWED_ORIGINS",
	} {
		_ = viper.BindEnv(key)
	}

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	config.ServerPort = strings.TrimSpace(config.ServerPort)
	if config.ServerPort == "" {
		config.ServerPort = defaultPort
	}
	if config.RequestTimeoutSeconds <= 0 {
		log.Printf("level=warn component=config msg=\"non-positive request timeout; using default\" value=%d", config.RequestTimeoutSeconds)
		config.RequestTimeoutSeconds = defaultTimeoutSeconds
	}
	if strings.TrimSpace(config.CORSAllowedOrigins) == "" {
		config.CORSAllowedOrigins = defaultCORSOrigins
	}
	return
}

// RequestTimeout 回傳 HTTP 請求逾時。
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// AllowedOrigins 將逗號分隔的來源字串拆成清單。
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
