package advice_test

import (
	"errors"
	"testing"

	"github.com/godaddy-x/freego-aop/advice"
	DIC "github.com/godaddy-x/freego-aop/common"
	"github.com/godaddy-x/freego-aop/ex"
	"github.com/godaddy-x/freego-aop/joinpoint"
)

type recorder struct {
	events []string
	thrown error
	result interface{}
}

func newRecordingChain(t *testing.T, conf *DIC.DispatcherConfig) (*advice.Chain, *recorder) {
	rec := &recorder{}
	d := advice.NewDispatcher(conf)
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(d.Register("before", advice.BeforeFunc(func(jp *joinpoint.BeforeMethod) error {
		rec.events = append(rec.events, "before:"+jp.TargetMethod())
		return nil
	})))
	must(d.Register("returning", advice.AfterReturningFunc(func(jp joinpoint.ResultAware) error {
		rec.events = append(rec.events, "afterReturning")
		rec.result = jp.Result()
		return nil
	})))
	must(d.Register("throwing", advice.AfterThrowingFunc(func(jp joinpoint.ExceptionAware) error {
		rec.events = append(rec.events, "afterThrowing")
		rec.thrown = jp.Exception()
		return nil
	})))
	must(d.Register("after", advice.AfterFunc(func(jp joinpoint.JoinPoint) error {
		rec.events = append(rec.events, "after")
		return nil
	})))
	return advice.NewChain(d), rec
}

func eventsEqual(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProceedReturning(t *testing.T) {
	chain, rec := newRecordingChain(t, &DIC.DispatcherConfig{RecoverPanic: true})
	result, err := chain.Proceed(&OrderService{}, "save", []interface{}{42}, func() (interface{}, error) {
		return "saved", nil
	})
	if err != nil || result != "saved" {
		t.Fatalf("期望saved, 实际%v %v", result, err)
	}
	if !eventsEqual(rec.events, "before:save", "afterReturning", "after") {
		t.Errorf("事件顺序错误: %v", rec.events)
	}
	if rec.result != "saved" {
		t.Errorf("通知收到的返回值错误: %v", rec.result)
	}
}

func TestProceedThrowing(t *testing.T) {
	chain, rec := newRecordingChain(t, &DIC.DispatcherConfig{RecoverPanic: true})
	cause := errors.New("disk full")
	_, err := chain.Proceed(&OrderService{}, "save", nil, func() (interface{}, error) {
		return nil, cause
	})
	if err != cause {
		t.Errorf("应原样返回调用错误, 实际%v", err)
	}
	if !eventsEqual(rec.events, "before:save", "afterThrowing", "after") {
		t.Errorf("事件顺序错误: %v", rec.events)
	}
	if rec.thrown != cause {
		t.Error("afterThrowing通知应收到同一错误引用")
	}
}

func TestProceedBeforeVeto(t *testing.T) {
	d := advice.NewDispatcher(&DIC.DispatcherConfig{})
	deny := ex.Throw{Code: 403, Msg: "forbidden"}
	_ = d.Register("guard", advice.BeforeFunc(func(jp *joinpoint.BeforeMethod) error {
		return deny
	}))
	called := false
	_, err := advice.NewChain(d).Proceed(&OrderService{}, "save", nil, func() (interface{}, error) {
		called = true
		return nil, nil
	})
	if called {
		t.Error("before通知拒绝后不应执行调用")
	}
	if !ex.Is(err, 403) {
		t.Errorf("期望403, 实际%v", err)
	}
}

func TestProceedAfterReturningAdviceError(t *testing.T) {
	d := advice.NewDispatcher(&DIC.DispatcherConfig{})
	_ = d.Register("audit", advice.AfterReturningFunc(func(jp joinpoint.ResultAware) error {
		return errors.New("audit failed")
	}))
	result, err := advice.NewChain(d).Proceed(&OrderService{}, "save", nil, func() (interface{}, error) {
		return 1, nil
	})
	if result != 1 {
		t.Errorf("返回值应保留, 实际%v", result)
	}
	if !ex.Is(err, ex.ADVICE) {
		t.Errorf("期望ADVICE错误, 实际%v", err)
	}
}

func TestProceedRecoversPanic(t *testing.T) {
	chain, rec := newRecordingChain(t, &DIC.DispatcherConfig{RecoverPanic: true})
	_, err := chain.Proceed(&OrderService{}, "save", nil, func() (interface{}, error) {
		panic("nil map")
	})
	if !ex.Is(err, ex.PANIC) {
		t.Fatalf("期望PANIC错误, 实际%v", err)
	}
	if rec.thrown == nil || !ex.Is(rec.thrown, ex.PANIC) {
		t.Errorf("afterThrowing通知应收到panic错误: %v", rec.thrown)
	}
}

func TestProceedRepanicsWhenNotRecovering(t *testing.T) {
	chain, rec := newRecordingChain(t, &DIC.DispatcherConfig{RecoverPanic: false})
	defer func() {
		r := recover()
		if r != "fatal" {
			t.Errorf("期望继续抛出原panic, 实际%v", r)
		}
		if !eventsEqual(rec.events, "before:save", "afterThrowing", "after") {
			t.Errorf("panic前应执行afterThrowing通知: %v", rec.events)
		}
	}()
	_, _ = chain.Proceed(&OrderService{}, "save", nil, func() (interface{}, error) {
		panic("fatal")
	})
}

func TestProceedInvalidInvocation(t *testing.T) {
	chain := advice.NewChain(nil)
	if _, err := chain.Proceed(nil, "save", nil, func() (interface{}, error) { return nil, nil }); !ex.Is(err, ex.INVOCATION) {
		t.Errorf("nil目标应返回INVOCATION错误, 实际%v", err)
	}
	if _, err := chain.Proceed(&OrderService{}, "save", nil, nil); !ex.Is(err, ex.INVOCATION) {
		t.Errorf("nil调用应返回INVOCATION错误, 实际%v", err)
	}
	if chain.Dispatcher() == nil {
		t.Error("默认调度器不应为nil")
	}
}
