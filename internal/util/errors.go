package util

import "errors"

var (
	ErrUserNotFound             = errors.New("用户不存在")
	ErrEmailRegistered          = errors.New("该邮箱已被注册")
	ErrConstraintViolation      = errors.New("constraint violation")
	ErrReferentialIntegrity     = errors.New("blocked by referential constraint")
	ErrStatsNotFound            = errors.New("user stats not found")
	ErrMoodSessionNotFound      = errors.New("mood session not found")
	ErrBreathingSessionNotFound = errors.New("breathing session not found")
	ErrBreathingLevelNotFound   = errors.New("breathing level not found")
)
