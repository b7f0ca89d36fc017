package joinpoint

import (
	"github.com/godaddy-x/freego-aop/utils"
)

// Description 连接点的扁平快照, 便于日志输出或JSON序列化
type Description struct {
	Kind      string   `json:"kind"`
	Signature string   `json:"signature"`
	Method    string   `json:"method"`
	Arguments []string `json:"arguments"`
	Result    string   `json:"result,omitempty"`
	Exception string   `json:"exception,omitempty"`
}

func Describe(jp JoinPoint) Description {
	inv := jp.Invocation()
	desc := Description{
		Kind:      jp.Kind().String(),
		Signature: inv.Signature(),
		Method:    inv.TargetMethod(),
		Arguments: make([]string, 0, inv.NumArguments()),
	}
	for _, arg := range inv.args {
		desc.Arguments = append(desc.Arguments, utils.AnyToStr(arg))
	}
	switch v := jp.(type) {
	case ExceptionAware:
		if err := v.Exception(); err != nil {
			desc.Exception = err.Error()
		}
	case ResultAware:
		desc.Result = utils.AnyToStr(v.Result())
	}
	return desc
}

func (self Description) String() string {
	if b, err := utils.JsonMarshal(self); err == nil {
		return utils.Bytes2Str(b)
	}
	return utils.AddStr(self.Kind, " ", self.Signature)
}
