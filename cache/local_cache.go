package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// 默认配置常量
const (
	defaultExpiration = 5 * time.Minute  // 默认过期时间5分钟
	cleanupInterval   = 10 * time.Minute // 清理间隔10分钟
)

// LocalCache 使用go-cache的本地缓存, 线程安全
type LocalCache struct {
	cache *gocache.Cache
}

// NewLocalCache a: 默认过期时间(分钟), b: 清理间隔(分钟), <=0使用默认值
func NewLocalCache(a, b int) *LocalCache {
	defaultExp := defaultExpiration
	cleanupInt := cleanupInterval
	if a > 0 {
		defaultExp = time.Duration(a) * time.Minute
	}
	if b > 0 {
		cleanupInt = time.Duration(b) * time.Minute
	}
	return &LocalCache{cache: gocache.New(defaultExp, cleanupInt)}
}

func (self *LocalCache) Get(key string) (interface{}, bool) {
	return self.cache.Get(key)
}

// Put expire单位秒, <=0时使用默认过期时间
func (self *LocalCache) Put(key string, input interface{}, expire ...int) {
	if len(expire) > 0 && expire[0] > 0 {
		self.cache.Set(key, input, time.Duration(expire[0])*time.Second)
		return
	}
	self.cache.SetDefault(key, input)
}

// PutIfAbsent 键不存在时写入并返回true, 原子操作
func (self *LocalCache) PutIfAbsent(key string, input interface{}, expire int) bool {
	exp := gocache.DefaultExpiration
	if expire > 0 {
		exp = time.Duration(expire) * time.Second
	}
	return self.cache.Add(key, input, exp) == nil
}

func (self *LocalCache) Exists(key string) bool {
	_, b := self.cache.Get(key)
	return b
}

func (self *LocalCache) Del(keys ...string) {
	for _, k := range keys {
		self.cache.Delete(k)
	}
}

func (self *LocalCache) Size() int {
	return self.cache.ItemCount()
}

func (self *LocalCache) Flush() {
	self.cache.Flush()
}
