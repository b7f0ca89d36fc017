package utils

/**
 * @author shadow
 * @createby 2018.10.10
 */

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/google/uuid"
)

// 高性能拼接字符串
func AddStr(input ...interface{}) string {
	if len(input) == 0 {
		return ""
	}
	var rstr bytes.Buffer
	for _, vs := range input {
		if v, b := vs.(string); b {
			rstr.WriteString(v)
		} else if v, b := vs.([]byte); b {
			rstr.WriteString(Bytes2Str(v))
		} else if v, b := vs.(error); b {
			rstr.WriteString(v.Error())
		} else {
			rstr.WriteString(AnyToStr(vs))
		}
	}
	return rstr.String()
}

// 高性能拼接错误对象
func Error(input ...interface{}) error {
	msg := AddStr(input...)
	return errors.New(msg)
}

// AnyToStr 基础类型直接转换, 复合类型优先使用JSON, 失败时退回%v格式
func AnyToStr(any interface{}) string {
	if any == nil {
		return ""
	}
	switch v := any.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	if b, err := JsonMarshal(any); err == nil {
		return Bytes2Str(b)
	}
	return fmt.Sprintf("%v", any)
}

// string to int
func StrToInt(str string) (int, error) {
	b, err := strconv.Atoi(str)
	if err != nil {
		return 0, errors.New("string to int failed")
	}
	return b, nil
}

func GetUUID(replace ...bool) string {
	uid, err := uuid.NewRandom()
	if err != nil {
		log.Println("uuid failed:", err)
	}
	if len(replace) > 0 && replace[0] {
		return strings.ReplaceAll(uid.String(), "-", "")
	}
	return uid.String()
}

// 读取文件
func ReadFile(path string) ([]byte, error) {
	if len(path) == 0 {
		return nil, Error("path is nil")
	}
	if b, err := os.ReadFile(path); err != nil {
		return nil, Error("read file [", path, "] failed: ", err)
	} else {
		return b, nil
	}
}

// 字节数组转字符串
func Bytes2Str(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
