// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"shopp_backend/internal/feature/catalog/domain/entity"
	"shopp_backend/internal/feature/catalog/usecase"
)

// productGorm はProductRepositoryインターフェースのGORM実装です。
type productGorm struct {
	db *gorm.DB
}

// productGormがProductRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductGorm は指定されたgorm.DB接続でproductGormの新しいインスタンスを生成します。
func NewProductGorm(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

// Create は次の連番ID（max(id)+1、空のカタログでは1）を割り当てて
// 商品を永続化します。採番と挿入は同一トランザクション内で行われます。
// read-committed分離では同時挿入が同じIDを計算し得ますが、その場合は
// 主キー制約で失敗するため、黙って重複することはありません。
func (r *productGorm) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID uint
		if err := tx.Model(&entity.Product{}).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID).Error; err != nil {
			return err
		}
		p.ID = maxID + 1
		return tx.Create(p).Error
	})
}

// Delete はIDで商品を削除します。
// 一致する行がない場合、usecase.ErrProductNotFoundを返します。
func (r *productGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

// ListAll はすべての商品をID昇順で返します。
func (r *productGorm) ListAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListNewest は挿入順で最後のn件を、古い順に並べて返します。
func (r *productGorm) ListNewest(ctx context.Context, n int) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(n).Find(&products).Error; err != nil {
		return nil, err
	}
	// DESCで取得したので昇順に戻す
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
	return products, nil
}

// ListByCategory はカテゴリ内の先頭n件をID昇順で返します。
func (r *productGorm) ListByCategory(ctx context.Context, category string, n int) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Limit(n).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
