// Package joinpoint 描述被拦截方法调用在通知执行时可见的上下文:
// 目标对象、方法名、参数, 以及返回值或抛出的错误.
//
// 连接点在拦截时构造, 按顺序交给零个或多个通知读取后丢弃.
// 所有变体构造后不可变, 并发读取无需加锁.
package joinpoint

// Kind 连接点变体标签
type Kind int

const (
	KindInvocation Kind = iota
	KindBefore
	KindAfterReturning
	KindAfterThrowing
)

func (k Kind) String() string {
	switch k {
	case KindInvocation:
		return "invocation"
	case KindBefore:
		return "before"
	case KindAfterReturning:
		return "afterReturning"
	case KindAfterThrowing:
		return "afterThrowing"
	}
	return "unknown"
}

// JoinPoint 封闭接口, 仅由本包内的变体实现
type JoinPoint interface {
	Kind() Kind
	Invocation() *MethodInvocation
	TargetObject() interface{}
	TargetMethod() string
	Arguments() []interface{}
	Signature() string

	joinPoint()
}

// ExceptionAware 携带异常的连接点, 仅适用于afterThrowing类通知
type ExceptionAware interface {
	JoinPoint
	Exception() error
}

// ResultAware 携带返回值的连接点
type ResultAware interface {
	JoinPoint
	Result() interface{}
}

// IsExceptionAware 能力判断, 不依赖具体变体类型; nil指针不视为连接点
func IsExceptionAware(v interface{}) bool {
	jp, ok := v.(ExceptionAware)
	return ok && Valid(jp)
}

func IsResultAware(v interface{}) bool {
	jp, ok := v.(ResultAware)
	return ok && Valid(jp)
}

// Valid jp非nil且持有调用快照
func Valid(jp JoinPoint) bool {
	return jp != nil && jp.Invocation() != nil
}
