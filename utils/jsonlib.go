package utils

import (
	"bytes"
	"errors"

	jsonIterator "github.com/json-iterator/go"
	"github.com/valyala/fastjson"
)

var json = jsonIterator.ConfigCompatibleWithStandardLibrary

// 对象转JSON字符串
func JsonMarshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, errors.New("data is nil")
	}
	return json.Marshal(v)
}

// 校验JSON格式是否合法
func JsonValid(b []byte) bool {
	//return json.Valid(b) // fastjson > default json 2倍
	if err := fastjson.ValidateBytes(b); err != nil {
		return false
	}
	return true
}

// JSON字符串转对象
func JsonUnmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if !JsonValid(data) {
		return errors.New("JSON format invalid")
	}
	buf := bytes.NewBuffer(data)
	d := json.NewDecoder(buf)
	d.UseNumber()
	if err := d.Decode(v); err != nil {
		return err
	}
	buf.Reset()
	return nil
}
