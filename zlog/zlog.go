package zlog

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DEBUG = "debug"
	INFO  = "info"
	WARN  = "warn"
	ERROR = "error"
)

var (
	defaultLog *zap.Logger
	debugMode  bool
	mu         sync.RWMutex
)

func init() {
	defaultLog = buildLog(&ZapConfig{Level: INFO, Console: true})
}

// 日志文件切割配置
type FileConfig struct {
	Filename   string // 日志文件路径
	MaxSize    int    // 每个日志文件保存的最大尺寸 单位：M
	MaxBackups int    // 日志文件最多保存多少个备份
	MaxAge     int    // 文件最多保存多少天
	Compress   bool   // 是否压缩
}

type ZapConfig struct {
	Level      string
	Console    bool
	FileConfig *FileConfig
	Callfunc   func([]byte) error // 日志回调, 每条日志编码后的内容
}

type callWriter struct {
	call func([]byte) error
}

func (self *callWriter) Write(b []byte) (int, error) {
	if err := self.call(b); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (self *callWriter) Sync() error {
	return nil
}

func getLevel(level string) zapcore.Level {
	switch level {
	case DEBUG:
		return zap.DebugLevel
	case WARN:
		return zap.WarnLevel
	case ERROR:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func buildLog(config *ZapConfig) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "linenum",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	var syncers []zapcore.WriteSyncer
	if config.FileConfig != nil && len(config.FileConfig.Filename) > 0 {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   config.FileConfig.Filename,
			MaxSize:    config.FileConfig.MaxSize,
			MaxBackups: config.FileConfig.MaxBackups,
			MaxAge:     config.FileConfig.MaxAge,
			Compress:   config.FileConfig.Compress,
		}))
	}
	if config.Callfunc != nil {
		syncers = append(syncers, &callWriter{call: config.Callfunc})
	}
	if config.Console || len(syncers) == 0 {
		syncers = append(syncers, zapcore.AddSync(os.Stdout))
	}
	atomicLevel := zap.NewAtomicLevelAt(getLevel(config.Level))
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.NewMultiWriteSyncer(syncers...), atomicLevel)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// InitDefaultLog 初始化默认日志对象, 重复调用会替换旧实例
func InitDefaultLog(config *ZapConfig) *zap.Logger {
	if config == nil {
		config = &ZapConfig{Level: INFO, Console: true}
	}
	log := buildLog(config)
	mu.Lock()
	old := defaultLog
	defaultLog = log
	debugMode = config.Level == DEBUG
	mu.Unlock()
	if old != nil {
		_ = old.Sync()
	}
	return log
}

func getLog() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLog
}

func IsDebug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debugMode
}

// start > 0 时追加耗时字段, 单位毫秒
func withCost(start int64, fields []zap.Field) []zap.Field {
	if start > 0 {
		fields = append(fields, zap.Int64("cost", time.Now().UnixMilli()-start))
	}
	return fields
}

func Debug(msg string, start int64, fields ...zap.Field) {
	getLog().Debug(msg, withCost(start, fields)...)
}

func Info(msg string, start int64, fields ...zap.Field) {
	getLog().Info(msg, withCost(start, fields)...)
}

func Warn(msg string, start int64, fields ...zap.Field) {
	getLog().Warn(msg, withCost(start, fields)...)
}

func Error(msg string, start int64, fields ...zap.Field) {
	getLog().Error(msg, withCost(start, fields)...)
}

func String(key, val string) zap.Field {
	return zap.String(key, val)
}

func Strings(key string, val []string) zap.Field {
	return zap.Strings(key, val)
}

func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

func Any(key string, val interface{}) zap.Field {
	return zap.Any(key, val)
}

// AddError 单个错误使用error字段, 多个错误使用errors字段
func AddError(err ...error) zap.Field {
	if len(err) == 1 {
		return zap.NamedError("error", err[0])
	}
	return zap.Errors("errors", err)
}
