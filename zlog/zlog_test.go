package zlog_test

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/godaddy-x/freego-aop/zlog"
)

func TestZap(t *testing.T) {
	var mu sync.Mutex
	var lines []string
	config := &zlog.ZapConfig{
		Level:   zlog.DEBUG,
		Console: false,
		Callfunc: func(b []byte) error {
			mu.Lock()
			lines = append(lines, string(b))
			mu.Unlock()
			return nil
		},
	}
	zlog.InitDefaultLog(config)
	defer zlog.InitDefaultLog(nil)
	if !zlog.IsDebug() {
		t.Fatal("debug模式未开启")
	}
	a := errors.New("my")
	b := errors.New("ow")
	zlog.Info("zlog 初始化成功", 0, zlog.String("test", "w"), zlog.Any("wo", map[string]interface{}{"yy": 45}), zlog.AddError(a, b))
	zlog.Debug("debug line", 0, zlog.AddError(a))
	mu.Lock()
	defer mu.Unlock()
	if len(lines) != 2 {
		t.Fatalf("期望2条日志, 实际%d条", len(lines))
	}
	if !strings.Contains(lines[0], `"test":"w"`) || !strings.Contains(lines[0], "errors") {
		t.Errorf("日志字段缺失: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"error":"my"`) {
		t.Errorf("错误字段缺失: %s", lines[1])
	}
}

func TestLevelFilter(t *testing.T) {
	var count int
	zlog.InitDefaultLog(&zlog.ZapConfig{
		Level: zlog.WARN,
		Callfunc: func(b []byte) error {
			count++
			return nil
		},
	})
	defer zlog.InitDefaultLog(nil)
	zlog.Debug("skip", 0)
	zlog.Info("skip", 0)
	zlog.Warn("keep", 0)
	zlog.Error("keep", time.Now().UnixMilli())
	if count != 2 {
		t.Errorf("期望2条日志, 实际%d条", count)
	}
}
