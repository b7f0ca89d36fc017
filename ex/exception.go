package ex

import (
	"errors"
	"strings"

	"github.com/godaddy-x/freego-aop/utils"
)

/**
 * @author shadow
 * @createby 2018.12.13
 */

const (
	SEP     = "∵∴"
	BIZ     = 100000 // 普通业务异常
	SYSTEM  = 999998 // 系统级异常
	UNKNOWN = 999999 // 未知异常

	INVOCATION = 799997 // 连接点构造参数非法
	ADVICE     = 799998 // 通知执行/注册失败
	PANIC      = 799999 // 被拦截方法或通知发生panic
)

const (
	INVOCATION_ERR = "invalid method invocation"
	ADVICE_ERR     = "advice execution failed"
	PANIC_ERR      = "recovered from panic"
)

// Throw 结构化异常, Err保留原始错误链
type Throw struct {
	Code int
	Msg  string
	Arg  []string
	Err  error
}

func (self Throw) Error() string {
	if self.Code == 0 {
		self.Code = BIZ
	}
	if len(self.Arg) == 0 {
		return utils.AddStr(self.Code, SEP, self.Msg)
	}
	return utils.AddStr(self.Code, SEP, self.Msg, SEP, strings.Join(self.Arg, ","))
}

func (self Throw) Unwrap() error {
	return self.Err
}

// Catch 还原异常对象, 优先从错误链中直接获取
func Catch(err error) Throw {
	if err == nil || isNilThrow(err) {
		return Throw{Code: UNKNOWN, Msg: "error is nil"}
	}
	if throw, ok := asThrow(err); ok {
		if throw.Code == 0 {
			throw.Code = BIZ
		}
		return throw
	}
	spl := strings.Split(err.Error(), SEP)
	if len(spl) == 1 {
		return Throw{Code: UNKNOWN, Msg: spl[0], Err: err}
	}
	c, e := utils.StrToInt(spl[0])
	if e != nil {
		return Throw{Code: SYSTEM, Msg: e.Error(), Err: err}
	}
	if len(spl) == 2 {
		return Throw{Code: c, Msg: spl[1], Err: err}
	} else if len(spl) == 3 {
		return Throw{Code: c, Msg: spl[1], Arg: strings.Split(spl[2], ","), Err: err}
	}
	return Throw{Code: UNKNOWN, Msg: "failed to catch exception", Err: err}
}

// Is 判断错误链中是否包含指定编码的异常
func Is(err error, code int) bool {
	for err != nil {
		if throw, ok := toThrow(err); ok && throw.Code == code {
			return true
		}
		err = unwrap(err)
	}
	return false
}

// asThrow 返回错误链中第一个Throw, 值类型与指针类型均可
func asThrow(err error) (Throw, bool) {
	for err != nil {
		if throw, ok := toThrow(err); ok {
			return throw, true
		}
		err = unwrap(err)
	}
	return Throw{}, false
}

func toThrow(err error) (Throw, bool) {
	switch v := err.(type) {
	case Throw:
		return v, true
	case *Throw:
		if v != nil {
			return *v, true
		}
	}
	return Throw{}, false
}

// nil *Throw 调用Unwrap会解引用空指针, 直接终止
func unwrap(err error) error {
	if isNilThrow(err) {
		return nil
	}
	return errors.Unwrap(err)
}

func isNilThrow(err error) bool {
	v, ok := err.(*Throw)
	return ok && v == nil
}
