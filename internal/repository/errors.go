package repository

import (
	"errors"
	"fmt"
	"strings"

	"harmonylink_backend/internal/util"

	"gorm.io/gorm"
)

// translate 把驱动层的约束错误归一到 util 中的哨兵错误。
// gorm 的 TranslateError 覆盖大部分情况，其余按错误文本兜底，
// sqlite 与 mysql 的报错文本在此各有一个分支。
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", util.ErrEmailRegistered, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", util.ErrReferentialIntegrity, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", util.ErrConstraintViolation, err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "Duplicate entry"):
		return fmt.Errorf("%w: %v", util.ErrEmailRegistered, err)
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "Check constraint"):
		return fmt.Errorf("%w: %v", util.ErrConstraintViolation, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "foreign key constraint fails"):
		return fmt.Errorf("%w: %v", util.ErrReferentialIntegrity, err)
	}

	return err
}
