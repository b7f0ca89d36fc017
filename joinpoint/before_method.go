package joinpoint

type BeforeMethod struct {
	*MethodInvocation
}

func NewBeforeMethod(target interface{}, method string, args ...interface{}) (*BeforeMethod, error) {
	invocation, err := NewMethodInvocation(target, method, args...)
	if err != nil {
		return nil, err
	}
	return &BeforeMethod{MethodInvocation: invocation}, nil
}

// Invocation nil接收者返回nil, 不解引用内嵌字段
func (self *BeforeMethod) Invocation() *MethodInvocation {
	if self == nil {
		return nil
	}
	return self.MethodInvocation
}

func (self *BeforeMethod) Kind() Kind {
	return KindBefore
}
