package advice

import (
	"github.com/godaddy-x/freego-aop/ex"
	"github.com/godaddy-x/freego-aop/joinpoint"
	"github.com/godaddy-x/freego-aop/utils"
	"github.com/godaddy-x/freego-aop/zlog"
)

// Chain 围绕一次调用依次产生before/afterReturning/afterThrowing连接点并分发
type Chain struct {
	dispatcher *Dispatcher
}

func NewChain(dispatcher *Dispatcher) *Chain {
	if dispatcher == nil {
		dispatcher = NewDispatcher(nil)
	}
	return &Chain{dispatcher: dispatcher}
}

func (self *Chain) Dispatcher() *Dispatcher {
	return self.dispatcher
}

// Proceed 执行call并在前后分发通知.
// before通知返回错误时call不会执行; call的错误总是原样返回,
// afterReturning阶段的通知错误仅在call成功时返回.
// 未开启RecoverPanic时, call中的panic在afterThrowing通知执行后继续抛出.
func (self *Chain) Proceed(target interface{}, method string, args []interface{}, call func() (interface{}, error)) (interface{}, error) {
	if call == nil {
		return nil, ex.Throw{Code: ex.INVOCATION, Msg: ex.INVOCATION_ERR, Arg: []string{"call is nil", method}}
	}
	inv, err := joinpoint.NewMethodInvocation(target, method, args...)
	if err != nil {
		return nil, err
	}
	start := utils.UnixMilli()
	id := utils.GetUUID(true)
	if zlog.IsDebug() {
		zlog.Debug("chain.Proceed start", 0, zlog.String("id", id), zlog.String("signature", inv.Signature()))
	}
	if err := self.dispatcher.dispatch(inv.Before(), id); err != nil {
		zlog.Warn("chain.Proceed rejected by before advice", 0, zlog.String("id", id), zlog.String("signature", inv.Signature()), zlog.AddError(err))
		return nil, err
	}
	result, recovered, err := self.invoke(inv, call)
	if err != nil {
		if aerr := self.dispatcher.dispatch(inv.Throwing(err), id); aerr != nil && zlog.IsDebug() {
			zlog.Debug("chain.Proceed afterThrowing advice failed", 0, zlog.String("id", id), zlog.AddError(aerr))
		}
		if recovered != nil && !self.dispatcher.conf.RecoverPanic {
			panic(recovered)
		}
		return result, err
	}
	if aerr := self.dispatcher.dispatch(inv.Returning(result), id); aerr != nil {
		return result, aerr
	}
	if zlog.IsDebug() {
		zlog.Debug("chain.Proceed finished", start, zlog.String("id", id), zlog.String("signature", inv.Signature()))
	}
	return result, nil
}

func (self *Chain) invoke(inv *joinpoint.MethodInvocation, call func() (interface{}, error)) (result interface{}, recovered interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			recovered = r
			result = nil
			err = ex.Throw{Code: ex.PANIC, Msg: ex.PANIC_ERR, Arg: []string{inv.Signature()}, Err: panicError(r)}
		}
	}()
	result, err = call()
	return result, nil, err
}
