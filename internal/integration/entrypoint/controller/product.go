// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/usecase/product"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/entrypoint/dto"
	"github.com/pingoou/backend/internal/integration/entrypoint/middleware"
)

// ProductController handles product catalog endpoints.
type ProductController struct {
	createUseCase *product.CreateProductUseCase
	listUseCase   *product.ListProductsUseCase
	updateUseCase *product.UpdateProductUseCase
	deleteUseCase *product.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	createUseCase *product.CreateProductUseCase,
	listUseCase *product.ListProductsUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyProductName),
		})
		return
	}

	input := product.CreateProductInput{
		UserID:    userID,
		Name:      req.Name,
		Price:     req.Price,
		CostPrice: req.CostPrice,
		Category:  req.Category,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{UserID: userID})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	resp := dto.ProductListResponse{Products: make([]dto.ProductResponse, 0, len(output.Products))}
	for _, p := range output.Products {
		resp.Products = append(resp.Products, dto.ToProductResponse(p))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Update handles PUT /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID",
			Code:  string(domainerror.ErrCodeProductNotFound),
		})
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyProductName),
		})
		return
	}

	input := product.UpdateProductInput{
		ProductID: productID,
		UserID:    userID,
		Name:      req.Name,
		Price:     req.Price,
		CostPrice: req.CostPrice,
		Category:  req.Category,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID",
			Code:  string(domainerror.ErrCodeProductNotFound),
		})
		return
	}

	input := product.DeleteProductInput{
		ProductID: productID,
		UserID:    userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted successfully"})
}

// handleProductError handles product errors and returns appropriate HTTP responses.
func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		statusCode := c.getStatusCodeForProductError(productErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProductError maps product error codes to HTTP status codes.
func (c *ProductController) getStatusCodeForProductError(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyProductName,
		domainerror.ErrCodeNegativeProductPrice:
		return http.StatusBadRequest
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedProduct:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
