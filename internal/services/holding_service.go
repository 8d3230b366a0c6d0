package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/maybourshan/ci-cd-stocks-service/internal/errors"
	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
	"github.com/maybourshan/ci-cd-stocks-service/internal/validator"
)

// holdingService is the GORM-backed holdings store.
type holdingService struct {
	db *gorm.DB
}

// NewHoldingService creates a new HoldingServicer.
func NewHoldingService(db *gorm.DB) HoldingServicer {
	return &holdingService{db: db}
}

// ListHoldings returns holdings in creation order, optionally filtered by symbol.
func (s *holdingService) ListHoldings(ctx context.Context, filter HoldingFilter) ([]models.Holding, error) {
	query := s.db.WithContext(ctx).Model(&models.Holding{})
	if filter.Symbol != "" {
		query = query.Where("symbol = ?", filter.Symbol)
	}

	holdings := []models.Holding{}
	if err := query.Order("created_at ASC, id ASC").Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holdings, nil
}

// storeSource adapts a HoldingServicer to HoldingSource.
type storeSource struct {
	store HoldingServicer
}

// NewStoreSource lets the gains calculator read holdings from a local store.
func NewStoreSource(store HoldingServicer) HoldingSource {
	return storeSource{store: store}
}

// AllHoldings returns every holding in the store.
func (s storeSource) AllHoldings(ctx context.Context) ([]models.Holding, error) {
	return s.store.ListHoldings(ctx, HoldingFilter{})
}

// CreateHolding validates input, applies defaults and rounding, and stores a
// new holding. The symbol must not already be present.
func (s *holdingService) CreateHolding(ctx context.Context, input HoldingInput) (*models.Holding, error) {
	if input.Symbol == nil || strings.TrimSpace(*input.Symbol) == "" ||
		input.PurchasePrice == nil || input.Shares == nil {
		return nil, apperrors.ErrInvalidInput
	}
	if err := validateFields(input); err != nil {
		return nil, err
	}

	holding := &models.Holding{
		Name:          models.NotAvailable,
		Symbol:        *input.Symbol,
		PurchasePrice: models.RoundMoney(*input.PurchasePrice),
		PurchaseDate:  models.NotAvailable,
		Shares:        input.Shares.IntPart(),
	}
	if input.Name != nil {
		holding.Name = *input.Name
	}
	if input.PurchaseDate != nil {
		holding.PurchaseDate = *input.PurchaseDate
	}

	var existing []models.Holding
	result := s.db.WithContext(ctx).Where("symbol = ?", holding.Symbol).Limit(1).Find(&existing)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDuplicateSymbol,
			"Stock with symbol '"+holding.Symbol+"' already exists in portfolio.")
	}

	if err := s.db.WithContext(ctx).Create(holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holding, nil
}

// GetHolding returns a holding by its ID.
func (s *holdingService) GetHolding(ctx context.Context, id string) (*models.Holding, error) {
	var holding models.Holding
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &holding, nil
}

// UpdateHolding overwrites the fields present in input and keeps the rest.
// The symbol is uppercased. The new symbol is not checked against other
// holdings.
func (s *holdingService) UpdateHolding(ctx context.Context, id string, input HoldingInput) (*models.Holding, error) {
	holding, err := s.GetHolding(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateFields(input); err != nil {
		return nil, err
	}

	if input.Name != nil {
		holding.Name = *input.Name
	}
	if input.Symbol != nil {
		holding.Symbol = *input.Symbol
	}
	holding.Symbol = strings.ToUpper(holding.Symbol)
	if input.PurchasePrice != nil {
		holding.PurchasePrice = *input.PurchasePrice
	}
	holding.PurchasePrice = models.RoundMoney(holding.PurchasePrice)
	if input.PurchaseDate != nil {
		holding.PurchaseDate = *input.PurchaseDate
	}
	if input.Shares != nil {
		holding.Shares = input.Shares.IntPart()
	}

	if err := s.db.WithContext(ctx).Save(holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holding, nil
}

// DeleteHolding permanently removes a holding.
func (s *holdingService) DeleteHolding(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Holding{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

// validateFields rejects blank symbols, negative amounts and badly shaped
// dates.
var (
	// purchase_price is NUMERIC(14,2): twelve integer digits.
	priceLimit = decimal.New(1, 12)
	maxShares  = decimal.NewFromInt(math.MaxInt64)
)

func validateFields(input HoldingInput) error {
	if input.Symbol != nil && strings.TrimSpace(*input.Symbol) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol must not be blank")
	}
	if input.PurchasePrice != nil && input.PurchasePrice.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price must not be negative")
	}
	if input.PurchasePrice != nil && models.RoundMoney(*input.PurchasePrice).GreaterThanOrEqual(priceLimit) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price is too large")
	}
	if input.Shares != nil && input.Shares.LessThan(decimal.Zero) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Shares must not be negative")
	}
	if input.Shares != nil && input.Shares.Truncate(0).GreaterThan(maxShares) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Shares is too large")
	}
	if input.PurchaseDate != nil && !validator.IsPurchaseDate(*input.PurchaseDate) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase date must be formatted YYYY-MM-DD")
	}
	return nil
}
