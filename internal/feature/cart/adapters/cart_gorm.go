// Package adapters はcartフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shopp_backend/internal/feature/auth/domain/entity"
	"shopp_backend/internal/feature/cart/usecase"
)

// cartGorm はCartRepositoryインターフェースのGORM実装です。
// カートはusersテーブルのcart列として永続化されます。
type cartGorm struct {
	db *gorm.DB
}

// cartGormがCartRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CartRepository = (*cartGorm)(nil)

// NewCartGorm は指定されたgorm.DB接続でcartGormの新しいインスタンスを生成します。
func NewCartGorm(db *gorm.DB) *cartGorm {
	return &cartGorm{db: db}
}

// GetCart はユーザーのカートマッピング全体を取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *cartGorm) GetCart(ctx context.Context, userID uint) (entity.CartData, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Select("id", "cart").Where("id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	if u.Cart == nil {
		u.Cart = entity.NewCartData()
	}
	return u.Cart, nil
}

// SaveCart はcart列のみを書き戻します。
// 対象行が存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *cartGorm) SaveCart(ctx context.Context, userID uint, cart entity.CartData) error {
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("cart", cart)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
