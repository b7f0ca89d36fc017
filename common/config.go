package DIC

// AopConfig 通用配置结构体
type AopConfig struct {
	// 日志配置
	Logger *ZapConfig `yaml:"logger,omitempty" json:"Logger"`

	// 通知调度配置
	Dispatcher *DispatcherConfig `yaml:"dispatcher,omitempty" json:"Dispatcher"`

	// 应用基本信息
	Server struct {
		Name    string `yaml:"name" json:"Name"`
		Version string `yaml:"version" json:"Version"`
		Debug   bool   `yaml:"debug" json:"Debug"`
		Env     string `yaml:"env" json:"Env"`
	} `yaml:"server,omitempty" json:"Server"`
}

// DispatcherConfig 通知调度配置
type DispatcherConfig struct {
	RecoverPanic    bool `yaml:"recover_panic" json:"RecoverPanic"`       // 捕获被拦截方法及通知中的panic
	LogThrowing     bool `yaml:"log_throwing" json:"LogThrowing"`         // 注册默认的异常日志通知
	ThrottleSeconds int  `yaml:"throttle_seconds" json:"ThrottleSeconds"` // 相同异常日志的抑制窗口, 0表示不抑制
}

// ZapConfig 日志配置 - 与zlog.ZapConfig字段兼容
type ZapConfig struct {
	Level      string      `yaml:"level" json:"Level"`
	Console    bool        `yaml:"console" json:"Console"`
	FileConfig *FileConfig `yaml:"file_config,omitempty" json:"FileConfig"`
}

// FileConfig 日志文件配置 - 与zlog.FileConfig字段兼容
type FileConfig struct {
	Filename   string `yaml:"filename" json:"Filename"`
	MaxSize    int    `yaml:"max_size" json:"MaxSize"`
	MaxBackups int    `yaml:"max_backups" json:"MaxBackups"`
	MaxAge     int    `yaml:"max_age" json:"MaxAge"`
	Compress   bool   `yaml:"compress" json:"Compress"`
}

// InitDefaults 初始化默认值，避免nil指针
func (c *AopConfig) InitDefaults() {
	if c.Logger == nil {
		c.Logger = &ZapConfig{Level: "info", Console: true}
	}
	if len(c.Logger.Level) == 0 {
		c.Logger.Level = "info"
	}
	if c.Dispatcher == nil {
		c.Dispatcher = &DispatcherConfig{RecoverPanic: true, LogThrowing: true}
	}
	if c.Dispatcher.ThrottleSeconds < 0 {
		c.Dispatcher.ThrottleSeconds = 0
	}
}

// CheckReady 配置是否已完成初始化
func (c *AopConfig) CheckReady() bool {
	return c.Logger != nil && c.Dispatcher != nil
}

// DefaultConfig 未加载配置文件时使用
func DefaultConfig() *AopConfig {
	c := &AopConfig{}
	c.InitDefaults()
	return c
}
