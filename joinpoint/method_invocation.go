package joinpoint

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/godaddy-x/freego-aop/ex"
	"github.com/godaddy-x/freego-aop/utils"
)

// MethodInvocation 一次被观察的方法调用快照
type MethodInvocation struct {
	target interface{}
	method string
	args   []interface{}
}

// NewMethodInvocation 目标对象不能为空, 方法名必须是合法标识符.
// 参数按调用顺序复制保存, 不做参数个数校验.
func NewMethodInvocation(target interface{}, method string, args ...interface{}) (*MethodInvocation, error) {
	if isNil(target) {
		return nil, ex.Throw{Code: ex.INVOCATION, Msg: ex.INVOCATION_ERR, Arg: []string{"target object is nil", method}}
	}
	if !isMethodName(method) {
		return nil, ex.Throw{Code: ex.INVOCATION, Msg: ex.INVOCATION_ERR, Arg: []string{utils.AddStr("target method [", method, "] invalid")}}
	}
	cp := make([]interface{}, len(args))
	copy(cp, args)
	return &MethodInvocation{target: target, method: method, args: cp}, nil
}

func (self *MethodInvocation) Kind() Kind {
	return KindInvocation
}

func (self *MethodInvocation) Invocation() *MethodInvocation {
	return self
}

func (self *MethodInvocation) TargetObject() interface{} {
	return self.target
}

func (self *MethodInvocation) TargetMethod() string {
	return self.method
}

// Arguments 返回参数副本, 修改副本不影响连接点
func (self *MethodInvocation) Arguments() []interface{} {
	cp := make([]interface{}, len(self.args))
	copy(cp, self.args)
	return cp
}

func (self *MethodInvocation) Argument(i int) (interface{}, bool) {
	if i < 0 || i >= len(self.args) {
		return nil, false
	}
	return self.args[i], true
}

func (self *MethodInvocation) NumArguments() int {
	return len(self.args)
}

func (self *MethodInvocation) TargetType() reflect.Type {
	return reflect.TypeOf(self.target)
}

// Signature 格式: 目标类型.方法名, 如 *service.UserService.Save
func (self *MethodInvocation) Signature() string {
	return utils.AddStr(self.TargetType().String(), ".", self.method)
}

// Before/Returning/Throwing 基于同一调用快照派生各阶段连接点, 快照不可变可安全共享
func (self *MethodInvocation) Before() *BeforeMethod {
	return &BeforeMethod{MethodInvocation: self}
}

func (self *MethodInvocation) Returning(result interface{}) *AfterReturning {
	return &AfterReturning{MethodInvocation: self, result: result}
}

func (self *MethodInvocation) Throwing(exception error) *AfterThrowing {
	return &AfterThrowing{MethodInvocation: self, exception: exception}
}

func (self *MethodInvocation) joinPoint() {}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// 允许 Save 或 UserService.Save 形式
func isMethodName(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if !isIdentifier(seg) {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
