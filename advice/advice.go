// Package advice 按连接点能力选择并执行通知.
package advice

import (
	"github.com/godaddy-x/freego-aop/ex"
	"github.com/godaddy-x/freego-aop/joinpoint"
	"github.com/godaddy-x/freego-aop/utils"
)

// Type 通知声明的执行时机
type Type int

const (
	Before Type = iota
	AfterReturning
	AfterThrowing
	After // 方法结束后执行, 无论正常返回或抛出错误
)

func (t Type) String() string {
	switch t {
	case Before:
		return "before"
	case AfterReturning:
		return "afterReturning"
	case AfterThrowing:
		return "afterThrowing"
	case After:
		return "after"
	}
	return "unknown"
}

type Advice interface {
	Type() Type
	Apply(jp joinpoint.JoinPoint) error
}

// Accepts 根据连接点能力判断通知是否适用, 不检查具体变体类型
func Accepts(a Advice, jp joinpoint.JoinPoint) bool {
	if a == nil || !joinpoint.Valid(jp) {
		return false
	}
	switch a.Type() {
	case Before:
		return jp.Kind() == joinpoint.KindBefore
	case AfterReturning:
		return joinpoint.IsResultAware(jp)
	case AfterThrowing:
		return joinpoint.IsExceptionAware(jp)
	case After:
		return joinpoint.IsResultAware(jp) || joinpoint.IsExceptionAware(jp)
	}
	return false
}

type BeforeFunc func(jp *joinpoint.BeforeMethod) error

func (f BeforeFunc) Type() Type {
	return Before
}

func (f BeforeFunc) Apply(jp joinpoint.JoinPoint) error {
	bm, ok := jp.(*joinpoint.BeforeMethod)
	if !ok || bm.Invocation() == nil {
		return mismatch(Before, jp)
	}
	return f(bm)
}

type AfterReturningFunc func(jp joinpoint.ResultAware) error

func (f AfterReturningFunc) Type() Type {
	return AfterReturning
}

func (f AfterReturningFunc) Apply(jp joinpoint.JoinPoint) error {
	ra, ok := jp.(joinpoint.ResultAware)
	if !ok || !joinpoint.Valid(ra) {
		return mismatch(AfterReturning, jp)
	}
	return f(ra)
}

type AfterThrowingFunc func(jp joinpoint.ExceptionAware) error

func (f AfterThrowingFunc) Type() Type {
	return AfterThrowing
}

func (f AfterThrowingFunc) Apply(jp joinpoint.JoinPoint) error {
	ea, ok := jp.(joinpoint.ExceptionAware)
	if !ok || !joinpoint.Valid(ea) {
		return mismatch(AfterThrowing, jp)
	}
	return f(ea)
}

type AfterFunc func(jp joinpoint.JoinPoint) error

func (f AfterFunc) Type() Type {
	return After
}

func (f AfterFunc) Apply(jp joinpoint.JoinPoint) error {
	if !joinpoint.IsResultAware(jp) && !joinpoint.IsExceptionAware(jp) {
		return mismatch(After, jp)
	}
	return f(jp)
}

func mismatch(t Type, jp joinpoint.JoinPoint) error {
	kind := "nil"
	if jp != nil {
		kind = jp.Kind().String()
	}
	return ex.Throw{Code: ex.ADVICE, Msg: ex.ADVICE_ERR, Arg: []string{utils.AddStr(t.String(), " advice can not apply to ", kind, " join point")}}
}
