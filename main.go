package main

import (
	"os"

	"github.com/godaddy-x/freego-aop/advice"
	DIC "github.com/godaddy-x/freego-aop/common"
	"github.com/godaddy-x/freego-aop/ex"
	"github.com/godaddy-x/freego-aop/joinpoint"
	"github.com/godaddy-x/freego-aop/yaml"
	"github.com/godaddy-x/freego-aop/zlog"
)

const configPath = "resource/config.yaml"

type OwWallet struct {
	Id      int64
	AppID   string
	Balance int64
}

type WalletService struct {
	wallets map[int64]*OwWallet
}

func (self *WalletService) Withdraw(id int64, amount int64) (*OwWallet, error) {
	w, ok := self.wallets[id]
	if !ok {
		return nil, ex.Throw{Code: ex.BIZ, Msg: "wallet not found"}
	}
	if w.Balance < amount {
		return nil, ex.Throw{Code: ex.BIZ, Msg: "insufficient balance"}
	}
	w.Balance -= amount
	return w, nil
}

func toZapConfig(conf *DIC.ZapConfig) *zlog.ZapConfig {
	if conf == nil {
		return nil
	}
	config := &zlog.ZapConfig{Level: conf.Level, Console: conf.Console}
	if conf.FileConfig != nil {
		config.FileConfig = &zlog.FileConfig{
			Filename:   conf.FileConfig.Filename,
			MaxSize:    conf.FileConfig.MaxSize,
			MaxBackups: conf.FileConfig.MaxBackups,
			MaxAge:     conf.FileConfig.MaxAge,
			Compress:   conf.FileConfig.Compress,
		}
	}
	return config
}

func loadConfig(path string) *DIC.AopConfig {
	if _, err := os.Stat(path); err != nil {
		return DIC.DefaultConfig()
	}
	if err := yaml.InitAllConfig(path); err != nil {
		zlog.Error("load config failed", 0, zlog.String("path", path), zlog.AddError(err))
		return DIC.DefaultConfig()
	}
	return yaml.GetAllConfig()
}

func newWalletChain(conf *DIC.AopConfig) (*advice.Chain, error) {
	dispatcher := advice.NewDispatcher(conf.Dispatcher)
	if err := dispatcher.Register("AuditAdvice", advice.AfterReturningFunc(func(jp joinpoint.ResultAware) error {
		zlog.Info("wallet audit", 0, zlog.String("signature", jp.Signature()), zlog.Any("result", jp.Result()))
		return nil
	})); err != nil {
		return nil, err
	}
	if err := dispatcher.Register("AmountGuard", advice.BeforeFunc(func(jp *joinpoint.BeforeMethod) error {
		if amount, ok := jp.Invocation().Argument(1); ok {
			if v, _ := amount.(int64); v <= 0 {
				return ex.Throw{Code: ex.BIZ, Msg: "amount must be positive"}
			}
		}
		return nil
	})); err != nil {
		return nil, err
	}
	return advice.NewChain(dispatcher), nil
}

func withdraw(chain *advice.Chain, svc *WalletService, id, amount int64) (*OwWallet, error) {
	result, err := chain.Proceed(svc, "Withdraw", []interface{}{id, amount}, func() (interface{}, error) {
		return svc.Withdraw(id, amount)
	})
	if err != nil {
		return nil, err
	}
	return result.(*OwWallet), nil
}

func main() {
	conf := loadConfig(configPath)
	zlog.InitDefaultLog(toZapConfig(conf.Logger))

	chain, err := newWalletChain(conf)
	if err != nil {
		panic(err)
	}
	svc := &WalletService{wallets: map[int64]*OwWallet{1: {Id: 1, AppID: "123", Balance: 100}}}
	for _, amount := range []int64{30, 500, -1} {
		if w, err := withdraw(chain, svc, 1, amount); err != nil {
			zlog.Warn("withdraw failed", 0, zlog.Int64("amount", amount), zlog.AddError(err))
		} else {
			zlog.Info("withdraw success", 0, zlog.Int64("balance", w.Balance))
		}
	}
}
