package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

type Config struct {
	// Port Settings
	Host       string `json:"host"`       // The domain name of the server.
	ServerAddr string `json:"serverAddr"` // The address the server endpoint binds to.

	Auth struct {
		AccessTokenSecret      string `json:"accessTokenSecret"`
		RefreshTokenSecret     string `json:"refreshTokenSecret"`
		AccessTokenExpiryHour  int    `json:"accessTokenExpiryHour"`
		RefreshTokenExpiryHour int    `json:"refreshTokenExpiryHour"`
		LDAP                   struct {
			Enable   bool   `json:"enable"`
			UserName string `json:"userName"`
			Password string `json:"password"`
			Address  string `json:"address"`
			SearchDN string `json:"searchDN"`
		} `json:"ldap"`
	} `json:"auth"`

	// DB Settings
	Postgres struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		DBName   string `json:"dbname"`
		User     string `json:"user"`
		Password string `json:"password"`
		SSLMode  string `json:"sslmode"`
		TimeZone string `json:"TimeZone"`
		// ReplicaHost, when set, routes read traffic to a replica.
		ReplicaHost string `json:"replicaHost"`
	} `json:"postgres"`

	// Workspace Settings
	Workspace struct {
		// OpenAccess keeps every project readable by any active user.
		// Turned off, reading requires ownership or membership.
		OpenAccess bool `json:"openAccess"`
	} `json:"workspace"`

	SMTP struct {
		Enable   bool   `json:"enable"`
		Host     string `json:"host"`
		Port     string `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		Notify   string `json:"notify"`
	} `json:"smtp"`

	Webhook struct {
		Enable bool   `json:"enable"`
		URL    string `json:"url"`
	} `json:"webhook"`

	Seed struct {
		AdminPassword string `json:"adminPassword"` // Initial password used by hack/seed.
	} `json:"seed"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// InitConfig initializes the configuration by reading the configuration file.
// If the environment is set to debug, it reads the debug-config.yaml file.
// Otherwise, it reads the config.yaml file from ConfigMap.
// It returns a pointer to the Config struct and an error if any occurred.
func initConfig() *Config {
	// 读取配置文件
	config := &Config{}
	// Left out of the file, openAccess stays on and the workspace is readable by all.
	config.Workspace.OpenAccess = true
	var configPath string
	if IsDebugMode() {
		if os.Getenv("ORBIT_DEBUG_CONFIG_PATH") != "" {
			configPath = os.Getenv("ORBIT_DEBUG_CONFIG_PATH")
		} else {
			configPath = "./etc/debug-config.yaml"
		}
	} else {
		configPath = "/etc/config/config.yaml"
	}
	klog.Info("config path: ", configPath)

	err := readConfig(configPath, config)
	if err != nil {
		klog.Error("init config", err)
		panic(err)
	}
	return config
}

func readConfig(filePath string, config *Config) error {
	// 读取 YAML 配置文件
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	// 解析 YAML 数据到结构体
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return err
	}
	return nil
}
