package advice

import (
	"sync/atomic"

	"github.com/godaddy-x/freego-aop/cache"
	"github.com/godaddy-x/freego-aop/ex"
	"github.com/godaddy-x/freego-aop/joinpoint"
	"github.com/godaddy-x/freego-aop/utils"
	"github.com/godaddy-x/freego-aop/zlog"
)

const (
	LoggingAdviceName = "LoggingAdvice"
)

// LoggingAdvice 记录抛出错误的连接点.
// throttle > 0 时, 同一签名下相同编码和消息的错误在窗口期内只记录一次.
type LoggingAdvice struct {
	throttle   int
	cache      *cache.LocalCache
	suppressed int64
}

func NewLoggingAdvice(throttleSeconds int) *LoggingAdvice {
	self := &LoggingAdvice{throttle: throttleSeconds}
	if throttleSeconds > 0 {
		self.cache = cache.NewLocalCache(0, 1)
	}
	return self
}

func (self *LoggingAdvice) Type() Type {
	return AfterThrowing
}

func (self *LoggingAdvice) Apply(jp joinpoint.JoinPoint) error {
	ea, ok := jp.(joinpoint.ExceptionAware)
	if !ok || !joinpoint.Valid(ea) {
		return mismatch(AfterThrowing, jp)
	}
	desc := joinpoint.Describe(jp)
	cause := ea.Exception()
	if cause == nil {
		zlog.Warn("afterThrowing join point without exception", 0, zlog.String("signature", desc.Signature), zlog.Strings("arguments", desc.Arguments))
		return nil
	}
	throw := ex.Catch(cause)
	if self.cache != nil {
		key := utils.AddStr(desc.Signature, ex.SEP, throw.Code, ex.SEP, throw.Msg)
		if !self.cache.PutIfAbsent(key, 1, self.throttle) {
			atomic.AddInt64(&self.suppressed, 1)
			return nil
		}
	}
	zlog.Error("method invocation failed", 0,
		zlog.String("signature", desc.Signature),
		zlog.Strings("arguments", desc.Arguments),
		zlog.Int("code", throw.Code),
		zlog.String("reason", throw.Msg),
		zlog.AddError(cause))
	return nil
}

// Suppressed 因抑制窗口未输出的日志条数
func (self *LoggingAdvice) Suppressed() int64 {
	return atomic.LoadInt64(&self.suppressed)
}
