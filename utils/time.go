package utils

import "time"

// 获取当前时间毫秒
func UnixMilli() int64 {
	return time.Now().UnixMilli()
}
