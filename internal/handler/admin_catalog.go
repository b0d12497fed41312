package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/GachaLab_Go/internal/catalog"
	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

// AdminCatalogHandler manages gacha types and items
type AdminCatalogHandler struct {
	catalog catalog.Service
}

// NewAdminCatalogHandler creates a new admin catalog handler
func NewAdminCatalogHandler(svc catalog.Service) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalog: svc}
}

// GachaTypeRequest creates or replaces a gacha type. Unknown hand names fail decoding.
type GachaTypeRequest struct {
	ID          string          `json:"id" validate:"required,max=64"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	DrawMode    domain.DrawMode `json:"draw_mode" validate:"drawmode"`
	PointCost   int             `json:"point_cost" validate:"gte=0"`
	IsActive    *bool           `json:"is_active,omitempty"`
	StartAt     *time.Time      `json:"start_at,omitempty"`
	EndAt       *time.Time      `json:"end_at,omitempty"`
	Weights     prize.Weights   `json:"weights"`
	Hands       prize.TierHands `json:"hands"`
}

func (req GachaTypeRequest) toDomain() *domain.GachaType {
	return &domain.GachaType{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		DrawMode:    req.DrawMode,
		PointCost:   req.PointCost,
		IsActive:    req.IsActive == nil || *req.IsActive,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Weights:     req.Weights,
		Hands:       req.Hands,
	}
}

// ItemRequest creates or updates a prize. A null gacha_type_id lets any gacha award it.
type ItemRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Rarity      prize.Tier `json:"rarity" validate:"required,tier"`
	VideoURL    *string    `json:"video_url,omitempty" validate:"omitempty,max=1024"`
	GachaTypeID *string    `json:"gacha_type_id,omitempty" validate:"omitempty,max=64"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (req ItemRequest) toDomain(id int64) *domain.GachaItem {
	return &domain.GachaItem{
		ID:          id,
		Name:        req.Name,
		Rarity:      req.Rarity,
		VideoURL:    req.VideoURL,
		GachaTypeID: req.GachaTypeID,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
}

// GachaTypesAdminResponse lists every gacha type
type GachaTypesAdminResponse struct {
	GachaTypes []domain.GachaType `json:"gacha_types"`
	// DefaultHands is offered as the starting assignment for new poker gachas
	DefaultHands prize.TierHands `json:"default_hands"`
}

// HandleListGachaTypes lists every gacha type, active or not
// @Summary List gacha types (admin)
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Success 200 {object} GachaTypesAdminResponse
// @Router /api/v1/admin/gacha-types [get]
func (h *AdminCatalogHandler) HandleListGachaTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalog.ListGachaTypes(r.Context())
	if err != nil {
		respondServiceError(w, r, "List gacha types", err)
		return
	}
	respondJSON(w, http.StatusOK, GachaTypesAdminResponse{
		GachaTypes:   types,
		DefaultHands: prize.DefaultTierHands(),
	})
}

// HandleSaveGachaType creates or replaces a gacha type
// @Summary Save gacha type
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param request body GachaTypeRequest true "Gacha type"
// @Success 200 {object} domain.GachaType
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/gacha-types [post]
func (h *AdminCatalogHandler) HandleSaveGachaType(w http.ResponseWriter, r *http.Request) {
	var req GachaTypeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Save gacha type"); err != nil {
		return
	}

	saved, err := h.catalog.SaveGachaType(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Save gacha type", err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// HandleListItems lists items with optional filters.
// gacha_type_id=null selects items any gacha may award.
// @Summary List items
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param rarity query string false "Tier"
// @Param gacha_type_id query string false "Gacha type id or null"
// @Param is_active query bool false "Active flag"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} domain.PagedResult[domain.GachaItem]
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/items [get]
func (h *AdminCatalogHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ItemFilter{Page: parsePage(r)}

	if raw := q.Get("rarity"); raw != "" {
		tier, err := prize.ParseTier(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		filter.Rarity = &tier
	}

	switch ref := strings.TrimSpace(q.Get("gacha_type_id")); ref {
	case "":
	case "null":
		filter.AnyGachaOnly = true
	default:
		filter.GachaTypeID = &ref
	}

	if raw := q.Get("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		filter.IsActive = &active
	}

	res, err := h.catalog.ListItems(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "List items", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleCreateItem creates a prize
// @Summary Create item
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param request body ItemRequest true "Item"
// @Success 201 {object} domain.GachaItem
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/items [post]
func (h *AdminCatalogHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	item, err := h.catalog.CreateItem(r.Context(), req.toDomain(0))
	if err != nil {
		respondServiceError(w, r, "Create item", err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// HandleGetItem returns one prize
// @Summary Get item
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param id path int true "Item ID"
// @Success 200 {object} domain.GachaItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/items/{id} [get]
func (h *AdminCatalogHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDPathParam(r, w, "id")
	if !ok {
		return
	}

	item, err := h.catalog.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get item", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleUpdateItem replaces a prize
// @Summary Update item
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param id path int true "Item ID"
// @Param request body ItemRequest true "Item"
// @Success 200 {object} domain.GachaItem
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/items/{id} [put]
func (h *AdminCatalogHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDPathParam(r, w, "id")
	if !ok {
		return
	}

	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
		return
	}

	item, err := h.catalog.UpdateItem(r.Context(), req.toDomain(id))
	if err != nil {
		respondServiceError(w, r, "Update item", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleDeleteItem deactivates a prize
// @Summary Delete item
// @Tags admin
// @Produce json
// @Security AdminAuth
// @Param id path int true "Item ID"
// @Success 200 {object} domain.GachaItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/items/{id} [delete]
func (h *AdminCatalogHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := getIDPathParam(r, w, "id")
	if !ok {
		return
	}

	item, err := h.catalog.DeleteItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Delete item", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}
