package advice

import (
	"sync"

	DIC "github.com/godaddy-x/freego-aop/common"
	"github.com/godaddy-x/freego-aop/ex"
	"github.com/godaddy-x/freego-aop/joinpoint"
	"github.com/godaddy-x/freego-aop/utils"
	"github.com/godaddy-x/freego-aop/zlog"
	"go.uber.org/zap"
)

type adviceEntry struct {
	name   string
	advice Advice
}

// Dispatcher 通知注册表, 按注册顺序执行适用的通知.
// 注册与分发可并发调用.
type Dispatcher struct {
	mu      sync.RWMutex
	advices []adviceEntry
	conf    DIC.DispatcherConfig
}

// NewDispatcher conf为nil时使用默认配置; LogThrowing开启时自动注册LoggingAdvice
func NewDispatcher(conf *DIC.DispatcherConfig) *Dispatcher {
	if conf == nil {
		conf = DIC.DefaultConfig().Dispatcher
	}
	self := &Dispatcher{conf: *conf}
	if self.conf.LogThrowing {
		self.advices = append(self.advices, adviceEntry{name: LoggingAdviceName, advice: NewLoggingAdvice(self.conf.ThrottleSeconds)})
	}
	return self
}

func (self *Dispatcher) Config() DIC.DispatcherConfig {
	return self.conf
}

func (self *Dispatcher) Register(name string, advice Advice) error {
	if len(name) == 0 {
		return ex.Throw{Code: ex.ADVICE, Msg: "advice name is nil"}
	}
	if advice == nil {
		return ex.Throw{Code: ex.ADVICE, Msg: "advice is nil", Arg: []string{name}}
	}
	self.mu.Lock()
	defer self.mu.Unlock()
	for _, v := range self.advices {
		if v.name == name {
			return ex.Throw{Code: ex.ADVICE, Msg: "advice name already exists", Arg: []string{name}}
		}
	}
	self.advices = append(self.advices, adviceEntry{name: name, advice: advice})
	return nil
}

func (self *Dispatcher) Unregister(name string) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	for i, v := range self.advices {
		if v.name == name {
			self.advices = append(self.advices[:i:i], self.advices[i+1:]...)
			return true
		}
	}
	return false
}

func (self *Dispatcher) Names() []string {
	self.mu.RLock()
	defer self.mu.RUnlock()
	names := make([]string, 0, len(self.advices))
	for _, v := range self.advices {
		names = append(names, v.name)
	}
	return names
}

func (self *Dispatcher) snapshot() []adviceEntry {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.advices
}

// Dispatch 执行所有适用于jp的通知.
// before阶段遇到第一个错误立即停止并原样返回;
// 方法结束后的阶段执行全部通知, 失败仅记录日志, 返回第一个失败(ADVICE编码包装).
func (self *Dispatcher) Dispatch(jp joinpoint.JoinPoint) error {
	return self.dispatch(jp, "")
}

// id为调用链标识, 非空时写入失败日志
func (self *Dispatcher) dispatch(jp joinpoint.JoinPoint, id string) error {
	if !joinpoint.Valid(jp) {
		return ex.Throw{Code: ex.INVOCATION, Msg: ex.INVOCATION_ERR, Arg: []string{"join point is nil"}}
	}
	before := jp.Kind() == joinpoint.KindBefore
	var first error
	for _, v := range self.snapshot() {
		if !Accepts(v.advice, jp) {
			continue
		}
		err := self.apply(v, jp)
		if err == nil {
			continue
		}
		if before {
			return err
		}
		fields := []zap.Field{zlog.String("advice", v.name), zlog.String("kind", jp.Kind().String()), zlog.String("signature", jp.Signature()), zlog.AddError(err)}
		if len(id) > 0 {
			fields = append(fields, zlog.String("id", id))
		}
		zlog.Error("advice.Dispatch failed", 0, fields...)
		if first == nil {
			first = ex.Throw{Code: ex.ADVICE, Msg: ex.ADVICE_ERR, Arg: []string{v.name, jp.Kind().String()}, Err: err}
		}
	}
	return first
}

func (self *Dispatcher) apply(entry adviceEntry, jp joinpoint.JoinPoint) (err error) {
	if self.conf.RecoverPanic {
		defer func() {
			if r := recover(); r != nil {
				err = ex.Throw{Code: ex.PANIC, Msg: ex.PANIC_ERR, Arg: []string{entry.name}, Err: panicError(r)}
			}
		}()
	}
	return entry.advice.Apply(jp)
}

func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return utils.Error("panic: ", r)
}
