package joinpoint

// AfterReturning 方法正常返回后的连接点
type AfterReturning struct {
	*MethodInvocation
	result interface{}
}

func NewAfterReturning(target interface{}, method string, args []interface{}, result interface{}) (*AfterReturning, error) {
	invocation, err := NewMethodInvocation(target, method, args...)
	if err != nil {
		return nil, err
	}
	return &AfterReturning{MethodInvocation: invocation, result: result}, nil
}

// Invocation nil接收者返回nil, 不解引用内嵌字段
func (self *AfterReturning) Invocation() *MethodInvocation {
	if self == nil {
		return nil
	}
	return self.MethodInvocation
}

func (self *AfterReturning) Kind() Kind {
	return KindAfterReturning
}

func (self *AfterReturning) Result() interface{} {
	return self.result
}
