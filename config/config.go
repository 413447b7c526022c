package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 是 feedkit 的应用配置（YAML）。
//
// 示例：
//
//	store: redis
//	redis:
//	  addr: 127.0.0.1:6379
//	  db: 0
//	recommend:
//	  threshold: 1.5
//	  workers: 4
//	  exclude_rules:
//	    - 'item.category == "Nightlife"'
//	datagen:
//	  seed: 42
//	  users: 12
type Config struct {
	// Store 存储后端："memory" 或 "redis"（默认 memory）
	Store string `yaml:"store"`

	Redis struct {
		Addr string `yaml:"addr"`
		DB   int    `yaml:"db"`
	} `yaml:"redis"`

	// Feast 在线特征库（可选；Host 为空时不启用）
	Feast struct {
		Host      string   `yaml:"host"`
		Port      int      `yaml:"port"`
		Project   string   `yaml:"project"`
		EntityKey string   `yaml:"entity_key"`
		Features  []string `yaml:"features"`
	} `yaml:"feast"`

	Recommend struct {
		// Threshold 展示阈值；0 取默认值 1.5
		Threshold float64 `yaml:"threshold"`

		// Workers 逐用户并发数；0 或 1 表示串行
		Workers int `yaml:"workers"`

		// ExcludeRules CEL 排除规则列表
		ExcludeRules []string `yaml:"exclude_rules"`

		// PipelineFile 可选的 Pipeline 声明文件（pipeline.LoadFromYAML 格式），
		// 设置后覆盖上面的 Threshold/ExcludeRules 组装的默认链
		PipelineFile string `yaml:"pipeline_file"`
	} `yaml:"recommend"`

	Datagen struct {
		// Seed 随机种子；0 表示按时间播种（不可复现）
		Seed int64 `yaml:"seed"`

		// Users 生成的用户数（默认 12，与城市数对齐）
		Users int `yaml:"users"`
	} `yaml:"datagen"`
}

// Load 从 YAML 文件加载应用配置。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Store == "" {
		cfg.Store = "memory"
	}
	return &cfg, nil
}
