package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrUpgradeNotFound   = errors.New("upgrade not found")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCooldownActive    = errors.New("tap cooldown not elapsed")
	ErrMaxLevelReached   = errors.New("upgrade max level reached")
)
