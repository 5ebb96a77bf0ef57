package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopp_backend/internal/feature/catalog/domain/entity"
)

// mockCatalogUsecase is a mock implementation of the CatalogUsecase interface.
type mockCatalogUsecase struct {
	AddProductFunc     func(ctx context.Context, p *entity.Product) error
	RemoveProductFunc  func(ctx context.Context, id uint) error
	ListAllFunc        func(ctx context.Context) ([]entity.Product, error)
	NewCollectionsFunc func(ctx context.Context) ([]entity.Product, error)
	PopularInWomenFunc func(ctx context.Context) ([]entity.Product, error)
}

func (m *mockCatalogUsecase) AddProduct(ctx context.Context, p *entity.Product) error {
	if m.AddProductFunc != nil {
		return m.AddProductFunc(ctx, p)
	}
	return nil
}

func (m *mockCatalogUsecase) RemoveProduct(ctx context.Context, id uint) error {
	if m.RemoveProductFunc != nil {
		return m.RemoveProductFunc(ctx, id)
	}
	return nil
}

func (m *mockCatalogUsecase) ListAll(ctx context.Context) ([]entity.Product, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogUsecase) NewCollections(ctx context.Context) ([]entity.Product, error) {
	if m.NewCollectionsFunc != nil {
		return m.NewCollectionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogUsecase) PopularInWomen(ctx context.Context) ([]entity.Product, error) {
	if m.PopularInWomenFunc != nil {
		return m.PopularInWomenFunc(ctx)
	}
	return nil, nil
}

func TestCatalogHandler_AddProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockAddFunc    func(ctx context.Context, p *entity.Product) error
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name: "success: product added",
			requestBody: gin.H{
				"name":      "striped shirt",
				"image":     "https://img.example.com/1.png",
				"category":  "men",
				"new_price": 29.5,
				"old_price": 40,
			},
			mockAddFunc: func(ctx context.Context, p *entity.Product) error {
				if p.Name != "striped shirt" || p.Category != "men" {
					t.Errorf("unexpected product: %+v", p)
				}
				if p.NewPrice != 29.5 || p.OldPrice != 40 {
					t.Errorf("prices not mapped: %+v", p)
				}
				return nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"success": true, "name": "striped shirt"},
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"image": "x.png", "category": "men"},
			mockAddFunc:    nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"success": false, "error": "invalid request"},
		},
		{
			name: "failure: usecase error",
			requestBody: gin.H{
				"name": "shirt", "image": "x.png", "category": "men",
			},
			mockAddFunc: func(ctx context.Context, p *entity.Product) error {
				return errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"success": false, "error": "failed to add product"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCatalogHandler(&mockCatalogUsecase{AddProductFunc: tt.mockAddFunc})

			router := gin.New()
			router.POST("/addproduct", handler.AddProduct)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/addproduct", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestCatalogHandler_RemoveProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: echoes the submitted name", func(t *testing.T) {
		var removed uint
		handler := NewCatalogHandler(&mockCatalogUsecase{
			RemoveProductFunc: func(ctx context.Context, id uint) error {
				removed = id
				return nil
			},
		})

		router := gin.New()
		router.POST("/removeproduct", handler.RemoveProduct)

		req, _ := http.NewRequest(http.MethodPost, "/removeproduct",
			bytes.NewBufferString(`{"id": 3, "name": "old shirt"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), removed)
		assert.JSONEq(t, `{"success":true,"name":"old shirt"}`, w.Body.String())
	})

	t.Run("failure: missing id", func(t *testing.T) {
		handler := NewCatalogHandler(&mockCatalogUsecase{})

		router := gin.New()
		router.POST("/removeproduct", handler.RemoveProduct)

		req, _ := http.NewRequest(http.MethodPost, "/removeproduct", bytes.NewBufferString(`{"name": "x"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"invalid request"}`, w.Body.String())
	})
}

func TestCatalogHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	sample := []entity.Product{
		{ID: 1, Name: "a", Image: "a.png", Category: "women", NewPrice: 10, OldPrice: 20, Available: true, CreatedAt: now},
		{ID: 2, Name: "b", Image: "b.png", Category: "men", NewPrice: 15, OldPrice: 25, Available: true, CreatedAt: now},
	}

	t.Run("allproducts returns the storefront product shape", func(t *testing.T) {
		handler := NewCatalogHandler(&mockCatalogUsecase{
			ListAllFunc: func(ctx context.Context) ([]entity.Product, error) {
				return sample, nil
			},
		})

		router := gin.New()
		router.GET("/allproducts", handler.ListAll)

		req, _ := http.NewRequest(http.MethodGet, "/allproducts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, float64(1), items[0]["id"])
		assert.Equal(t, "a", items[0]["name"])
		// snake_case price keys are part of the contract
		assert.Equal(t, float64(10), items[0]["new_price"])
		assert.Equal(t, float64(20), items[0]["old_price"])
		assert.Contains(t, items[0], "date")
		assert.Equal(t, true, items[0]["available"])
	})

	t.Run("empty catalog serializes as an empty array, not null", func(t *testing.T) {
		handler := NewCatalogHandler(&mockCatalogUsecase{
			ListAllFunc: func(ctx context.Context) ([]entity.Product, error) {
				return nil, nil
			},
		})

		router := gin.New()
		router.GET("/allproducts", handler.ListAll)

		req, _ := http.NewRequest(http.MethodGet, "/allproducts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("newcollections delegates to the usecase", func(t *testing.T) {
		called := false
		handler := NewCatalogHandler(&mockCatalogUsecase{
			NewCollectionsFunc: func(ctx context.Context) ([]entity.Product, error) {
				called = true
				return sample, nil
			},
		})

		router := gin.New()
		router.GET("/newcollections", handler.NewCollections)

		req, _ := http.NewRequest(http.MethodGet, "/newcollections", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called, "usecase was not called")
	})

	t.Run("popularinwomen reports errors as 500", func(t *testing.T) {
		handler := NewCatalogHandler(&mockCatalogUsecase{
			PopularInWomenFunc: func(ctx context.Context) ([]entity.Product, error) {
				return nil, errors.New("db down")
			},
		})

		router := gin.New()
		router.GET("/popularinwomen", handler.PopularInWomen)

		req, _ := http.NewRequest(http.MethodGet, "/popularinwomen", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"failed to list products"}`, w.Body.String())
	})
}
