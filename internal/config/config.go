package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigPath 默认配置文件路径
const DefaultConfigPath = "configs/config_local.toml"

type MainConfig struct {
	AppName      string `toml:"appName"`
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	MaxBodyBytes int64  `toml:"maxBodyBytes"`

	// 同时配置证书与私钥时以 HTTPS 启动，并开启 HTTP->HTTPS 跳转
	CertFile string `toml:"certFile"`
	KeyFile  string `toml:"keyFile"`
}

// TLSEnabled 是否配置了证书
func (m MainConfig) TLSEnabled() bool {
	return m.CertFile != "" && m.KeyFile != ""
}

// Addr 监听地址
func (m MainConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

type CorsConfig struct {
	AllowOrigins []string `toml:"allowOrigins"`
	AllowMethods []string `toml:"allowMethods"`
	AllowHeaders []string `toml:"allowHeaders"`
}

type LogConfig struct {
	LogPath    string `toml:"logPath"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"maxSizeMB"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAgeDays int    `toml:"maxAgeDays"`
	Console    bool   `toml:"console"`
}

type JwtConfig struct {
	Enabled     bool   `toml:"enabled"`
	Key         string `toml:"key"`
	ExpireHours int    `toml:"expireHours"`
	Issuer      string `toml:"issuer"`
}

// AnalyzerConfig 文本分析配置
type AnalyzerConfig struct {
	// StrictMode 为 true 时未知的 analysisType 返回 400，否则返回空结果
	StrictMode bool `toml:"strictMode"`
	WsEnabled  bool `toml:"wsEnabled"`
}

type Config struct {
	MainConfig     `toml:"mainConfig"`
	CorsConfig     `toml:"corsConfig"`
	LogConfig      `toml:"logConfig"`
	JwtConfig      `toml:"jwtConfig"`
	AnalyzerConfig `toml:"analyzerConfig"`
}

var config *Config

// Default 返回与原部署一致的默认配置
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName:      "TextAnalyzer",
			Host:         "0.0.0.0",
			Port:         8080,
			MaxBodyBytes: 1 << 20,
		},
		CorsConfig: CorsConfig{
			AllowOrigins: []string{"http://localhost:4200"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		},
		LogConfig: LogConfig{
			LogPath:    "logs/textanalyzer.log",
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Console:    true,
		},
		JwtConfig: JwtConfig{
			ExpireHours: 24,
		},
		AnalyzerConfig: AnalyzerConfig{
			WsEnabled: true,
		},
	}
}

// LoadConfig 在默认配置之上解析 TOML 文件。文件不存在时使用默认配置。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	conf := Default()
	if _, err := toml.DecodeFile(configPath, conf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("配置文件 %s 不存在, 使用默认设置", configPath)
			config = conf
			return conf, nil
		}
		return nil, fmt.Errorf("decode config %s: %w", configPath, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	config = conf
	return conf, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("mainConfig.port out of range: %d", c.Port)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("mainConfig.maxBodyBytes must be positive")
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return fmt.Errorf("mainConfig.certFile and mainConfig.keyFile must be set together")
	}
	if len(c.AllowOrigins) == 0 {
		return fmt.Errorf("corsConfig.allowOrigins must not be empty")
	}
	if c.JwtConfig.Enabled && strings.TrimSpace(c.JwtConfig.Key) == "" {
		return fmt.Errorf("jwtConfig.key is required when jwtConfig.enabled is true")
	}
	return nil
}

// GetConfig 返回全局配置，未加载时读取默认路径
func GetConfig() *Config {
	if config == nil {
		conf, err := LoadConfig(DefaultConfigPath)
		if err != nil {
			log.Printf("加载配置文件失败: %v, 使用默认设置", err)
			conf = Default()
		}
		config = conf
	}
	return config
}
