package ex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/godaddy-x/freego-aop/ex"
)

// TestErrorChainBasic 测试基础错误链保持功能
func TestErrorChainBasic(t *testing.T) {
	originalErr := errors.New("connection refused")
	throw := ex.Throw{
		Code: ex.ADVICE,
		Msg:  ex.ADVICE_ERR,
		Arg:  []string{"AuditAdvice", "afterReturning"},
		Err:  originalErr,
	}
	if !errors.Is(throw, originalErr) {
		t.Error("errors.Is应能找到原始错误")
	}
	caught := ex.Catch(fmt.Errorf("dispatch: %w", throw))
	if caught.Code != ex.ADVICE || caught.Msg != ex.ADVICE_ERR {
		t.Errorf("Catch结果错误: %+v", caught)
	}
	if len(caught.Arg) != 2 || caught.Arg[0] != "AuditAdvice" {
		t.Errorf("Arg不匹配: %v", caught.Arg)
	}
}

func TestThrowError(t *testing.T) {
	if s := (ex.Throw{Msg: "biz"}).Error(); s != "100000"+ex.SEP+"biz" {
		t.Errorf("默认编码错误: %s", s)
	}
	if s := (ex.Throw{Code: 1, Msg: "m", Arg: []string{"a", "b"}}).Error(); s != "1"+ex.SEP+"m"+ex.SEP+"a,b" {
		t.Errorf("带参数格式错误: %s", s)
	}
}

// TestCatchFromString 从序列化字符串还原异常
func TestCatchFromString(t *testing.T) {
	c := ex.Catch(errors.New("401" + ex.SEP + "denied"))
	if c.Code != 401 || c.Msg != "denied" {
		t.Errorf("还原失败: %+v", c)
	}
	c = ex.Catch(errors.New("5" + ex.SEP + "m" + ex.SEP + "x,y"))
	if c.Code != 5 || len(c.Arg) != 2 || c.Arg[1] != "y" {
		t.Errorf("还原失败: %+v", c)
	}
	if c = ex.Catch(errors.New("plain")); c.Code != ex.UNKNOWN || c.Msg != "plain" {
		t.Errorf("普通错误应为UNKNOWN: %+v", c)
	}
	if c = ex.Catch(errors.New("abc" + ex.SEP + "m")); c.Code != ex.SYSTEM {
		t.Errorf("非法编码应为SYSTEM: %+v", c)
	}
	if c = ex.Catch(nil); c.Code != ex.UNKNOWN {
		t.Errorf("nil应为UNKNOWN: %+v", c)
	}
}

func TestIs(t *testing.T) {
	inner := ex.Throw{Code: ex.PANIC, Msg: ex.PANIC_ERR}
	outer := ex.Throw{Code: ex.ADVICE, Msg: ex.ADVICE_ERR, Err: inner}
	if !ex.Is(outer, ex.ADVICE) || !ex.Is(outer, ex.PANIC) {
		t.Error("应能匹配错误链中的编码")
	}
	if ex.Is(outer, ex.INVOCATION) || ex.Is(errors.New("x"), ex.UNKNOWN) || ex.Is(nil, ex.BIZ) {
		t.Error("不应匹配")
	}
}

// TestPointerThrow 指针形式的Throw同样可以识别
func TestPointerThrow(t *testing.T) {
	var err error = &ex.Throw{Code: 403, Msg: "forbidden"}
	if !ex.Is(err, 403) {
		t.Error("Is应匹配*Throw")
	}
	c := ex.Catch(fmt.Errorf("wrap: %w", err))
	if c.Code != 403 || c.Msg != "forbidden" {
		t.Errorf("Catch应还原*Throw, 实际%+v", c)
	}
	outer := ex.Throw{Code: ex.ADVICE, Err: &ex.Throw{Code: ex.PANIC}}
	if !ex.Is(outer, ex.PANIC) {
		t.Error("应能匹配错误链中的*Throw")
	}
	var nilThrow *ex.Throw
	if ex.Is(nilThrow, 403) {
		t.Error("nil指针不应匹配")
	}
	if c := ex.Catch(nilThrow); c.Code != ex.UNKNOWN {
		t.Errorf("nil指针应为UNKNOWN: %+v", c)
	}
}
