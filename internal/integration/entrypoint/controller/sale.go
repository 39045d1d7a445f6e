// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pingoou/backend/internal/application/usecase/sale"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
	"github.com/pingoou/backend/internal/integration/entrypoint/dto"
	"github.com/pingoou/backend/internal/integration/entrypoint/middleware"
)

// SaleController handles sale endpoints.
type SaleController struct {
	createUseCase *sale.CreateSaleUseCase
	listUseCase   *sale.ListSalesUseCase
	getUseCase    *sale.GetSaleUseCase
	updateUseCase *sale.UpdateSaleUseCase
	deleteUseCase *sale.DeleteSaleUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createUseCase *sale.CreateSaleUseCase,
	listUseCase *sale.ListSalesUseCase,
	getUseCase *sale.GetSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	deleteUseCase *sale.DeleteSaleUseCase,
) *SaleController {
	return &SaleController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	items, err := parseSaleItems(req.Items)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID in items",
			Code:  string(domainerror.ErrCodeSaleProductNotFound),
		})
		return
	}

	input := sale.CreateSaleInput{
		UserID:        userID,
		Items:         items,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		IsDelivery:    req.IsDelivery,
	}
	if req.CreatedAt != nil {
		input.CreatedAt = *req.CreatedAt
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), sale.ListSalesInput{UserID: userID})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	resp := dto.SaleListResponse{Sales: make([]dto.SaleResponse, 0, len(output.Sales))}
	for _, s := range output.Sales {
		resp.Sales = append(resp.Sales, dto.ToSaleResponse(s))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Get handles GET /sales/:id requests.
func (c *SaleController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID",
			Code:  string(domainerror.ErrCodeSaleNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), sale.GetSaleInput{
		SaleID: saleID,
		UserID: userID,
	})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Update handles PUT /sales/:id requests.
func (c *SaleController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID",
			Code:  string(domainerror.ErrCodeSaleNotFound),
		})
		return
	}

	var req dto.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	input := sale.UpdateSaleInput{
		SaleID:     saleID,
		UserID:     userID,
		IsDelivery: req.IsDelivery,
		CreatedAt:  req.CreatedAt,
	}
	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}
	if req.Items != nil {
		items, err := parseSaleItems(req.Items)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid product ID in items",
				Code:  string(domainerror.ErrCodeSaleProductNotFound),
			})
			return
		}
		input.Items = items
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Delete handles DELETE /sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID",
			Code:  string(domainerror.ErrCodeSaleNotFound),
		})
		return
	}

	input := sale.DeleteSaleInput{
		SaleID: saleID,
		UserID: userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Sale deleted successfully"})
}

// parseSaleItems converts request line items into use case inputs.
func parseSaleItems(items []dto.SaleItemRequest) ([]sale.CreateSaleItemInput, error) {
	parsed := make([]sale.CreateSaleItemInput, 0, len(items))
	for _, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, sale.CreateSaleItemInput{
			ProductID: productID,
			Qty:       item.Qty,
		})
	}
	return parsed, nil
}

// handleSaleError handles sale errors and returns appropriate HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		statusCode := c.getStatusCodeForSaleError(saleErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeEmptySaleItems,
		domainerror.ErrCodeInvalidItemQty,
		domainerror.ErrCodeSaleProductNotFound,
		domainerror.ErrCodeMissingSaleFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedSale:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
