package yaml

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	DIC "github.com/godaddy-x/freego-aop/common"
	"github.com/godaddy-x/freego-aop/utils"
	yamlv3 "gopkg.in/yaml.v3"
)

var (
	defaultAllConfig *DIC.AopConfig
	mu               sync.RWMutex
)

// LoadConfigFromPath 按扩展名解析: .yaml/.yml使用yaml, .json使用json
func LoadConfigFromPath(path string) (*DIC.AopConfig, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(data, filepath.Ext(path))
}

func LoadConfig(data []byte, ext string) (*DIC.AopConfig, error) {
	config := &DIC.AopConfig{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yamlv3.Unmarshal(data, config); err != nil {
			return nil, utils.Error("parse yaml config failed: ", err)
		}
	case ".json":
		if err := utils.JsonUnmarshal(data, config); err != nil {
			return nil, utils.Error("parse json config failed: ", err)
		}
	default:
		return nil, utils.Error("unsupported config type: ", ext)
	}
	config.InitDefaults()
	return config, nil
}

func InitAllConfig(path string) error {
	config, err := LoadConfigFromPath(path)
	if err != nil {
		return err
	}
	mu.Lock()
	defaultAllConfig = config
	mu.Unlock()
	return nil
}

func GetAllConfig() *DIC.AopConfig {
	mu.RLock()
	defer mu.RUnlock()
	if defaultAllConfig == nil || !defaultAllConfig.CheckReady() {
		panic(errors.New("yaml config not ready"))
	}
	return defaultAllConfig
}
