package joinpoint

// AfterThrowing 方法以错误结束后的连接点.
// exception与出错位置共享同一引用, nil表示未捕获到错误.
type AfterThrowing struct {
	*MethodInvocation
	exception error
}

func NewAfterThrowing(target interface{}, method string, args []interface{}, exception error) (*AfterThrowing, error) {
	invocation, err := NewMethodInvocation(target, method, args...)
	if err != nil {
		return nil, err
	}
	return &AfterThrowing{MethodInvocation: invocation, exception: exception}, nil
}

// Invocation nil接收者返回nil, 不解引用内嵌字段
func (self *AfterThrowing) Invocation() *MethodInvocation {
	if self == nil {
		return nil
	}
	return self.MethodInvocation
}

func (self *AfterThrowing) Kind() Kind {
	return KindAfterThrowing
}

func (self *AfterThrowing) Exception() error {
	return self.exception
}
