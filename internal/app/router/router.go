package router

import (
	authhandler "shopp_backend/internal/feature/auth/transport/handler"
	carthandler "shopp_backend/internal/feature/cart/transport/handler"
	cataloghandler "shopp_backend/internal/feature/catalog/transport/handler"
	mediahandler "shopp_backend/internal/feature/media/transport/handler"
	"shopp_backend/internal/platform/http/handler"
	jwtmw "shopp_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, catalog *cataloghandler.CatalogHandler,
	cart *carthandler.CartHandler, media *mediahandler.MediaHandler) *gin.Engine {
	r := gin.Default()

	// CORS追加 管理画面とストアフロントはブラウザから呼ぶ
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/", handler.Root)
	r.GET("/healthz", handler.Health)

	// 商品カタログ
	r.GET("/allproducts", catalog.ListAll)
	r.GET("/newcollections", catalog.NewCollections)
	r.GET("/popularinwomen", catalog.PopularInWomen)
	// 管理画面から呼ばれる商品登録・削除
	r.POST("/addproduct", catalog.AddProduct)
	r.POST("/removeproduct", catalog.RemoveProduct)

	// 画像アップロード・説明文生成
	r.POST("/upload", media.Upload)
	r.POST("/describeproduct", media.DescribeProduct)

	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーの auth-token に JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/addtocart", cart.Add)
		auth.POST("/removefromcart", cart.Remove)
		auth.POST("/getcart", cart.Get)
	}

	return r
}
