package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zinando/smartapplicant-backend/internal/logger"
)

// ParserConfig 简历解析器配置
type ParserConfig struct {
	// PrimaryRegion 电话号码校验时优先尝试的地区码（ISO 3166-1 alpha-2）
	PrimaryRegion string `yaml:"primary_region"`
	// SupportedRegions 电话号码校验支持的其余地区码，按优先级排列
	SupportedRegions []string `yaml:"supported_regions"`
	// SkillDataDir 技能词表JSON数据文件所在目录，为空时使用内置词表
	SkillDataDir string `yaml:"skill_data_dir"`
}

// MatcherConfig 岗位匹配引擎配置
type MatcherConfig struct {
	// SkillMatchThreshold JD技能与简历全文模糊匹配的阈值（0-100）
	SkillMatchThreshold int `yaml:"skill_match_threshold"`
	// CertMatchThreshold 证书名称部分匹配的阈值（0-100）
	CertMatchThreshold int `yaml:"cert_match_threshold"`
	// KeywordMatchThreshold 关键词覆盖率匹配的阈值（0-100）
	KeywordMatchThreshold int `yaml:"keyword_match_threshold"`
}

// Config 应用程序配置
type Config struct {
	Parser ParserConfig `yaml:"parser"`

	Matcher MatcherConfig `yaml:"matcher"`

	// 日志配置
	Logger logger.Config `yaml:"logger"`
}

// defaultConfigPaths LoadConfig 未指定路径时按序查找的位置
var defaultConfigPaths = []string{
	"config.yaml",
	filepath.Join("config", "config.yaml"),
}

// LoadConfig 从YAML文件加载配置。
// path 为空时依次查找默认位置；找不到文件时返回默认配置而不是报错，
// 便于测试环境和纯库用法。
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range defaultConfigPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path == "" {
		return createDefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return createDefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	config := createDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	return config, nil
}

// createDefaultConfig 创建默认配置，用于测试环境和缺省运行
func createDefaultConfig() *Config {
	config := &Config{}

	// 解析器默认配置：尼日利亚优先，再覆盖常见的国际地区
	config.Parser.PrimaryRegion = "NG"
	config.Parser.SupportedRegions = []string{
		"US", "GB", "CA", "ZA", "GH", "KE", "IN", "DE", "FR", "AU",
	}
	config.Parser.SkillDataDir = ""

	// 匹配引擎默认阈值
	config.Matcher.SkillMatchThreshold = 85
	config.Matcher.CertMatchThreshold = 80
	config.Matcher.KeywordMatchThreshold = 85

	// 日志默认配置
	config.Logger.Level = "info"
	config.Logger.Format = "pretty"
	config.Logger.TimeFormat = "2006-01-02 15:04:05"
	config.Logger.ReportCaller = false

	return config
}

// CreateSampleConfig 创建一个示例配置文件
func CreateSampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("file '%s' already exists, refusing to overwrite", filePath)
	}

	config := createDefaultConfig()

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write sample config file '%s': %w", filePath, err)
	}

	return nil
}
