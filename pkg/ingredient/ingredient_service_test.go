package ingredient

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeIngredientRepository struct {
	ingredients map[string]*entities.Ingredient
	dependents  map[string]int64
	movements   []*entities.StockMovement
}

func newFakeIngredientRepository() *fakeIngredientRepository {
	return &fakeIngredientRepository{
		ingredients: make(map[string]*entities.Ingredient),
		dependents:  make(map[string]int64),
	}
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, ing *entities.Ingredient) error {
	f.ingredients[ing.ID.String()] = ing
	return nil
}

// GetIngredientByID hands out a copy, like a fresh row scan would. Mutating
// the returned entity must not reach the store unless written back explicitly.
func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	ing, ok := f.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ing
	return &copied, nil
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context, _ string) ([]*entities.Ingredient, error) {
	var result []*entities.Ingredient
	for _, ing := range f.ingredients {
		result = append(result, ing)
	}
	return result, nil
}

func (f *fakeIngredientRepository) RenameIngredient(_ context.Context, id string, name string) error {
	ing, ok := f.ingredients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ing.Name = name
	return nil
}

func (f *fakeIngredientRepository) DeleteIngredient(_ context.Context, id string) error {
	delete(f.ingredients, id)
	return nil
}

func (f *fakeIngredientRepository) CountDependents(_ context.Context, id string) (int64, error) {
	return f.dependents[id], nil
}

func (f *fakeIngredientRepository) DebitStock(_ context.Context, id string, quantity float64, reason string, referenceID *uuid.UUID, note string) error {
	ing, ok := f.ingredients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if quantity > ing.StockBase {
		return domain.ErrInsufficientStock
	}
	ing.StockBase -= quantity
	f.movements = append(f.movements, &entities.StockMovement{
		IngredientID: ing.ID, Quantity: -quantity, Reason: reason, ReferenceID: referenceID, Note: note,
	})
	return nil
}

func (f *fakeIngredientRepository) CreditStock(_ context.Context, id string, quantity float64, reason string, referenceID *uuid.UUID, note string) error {
	ing, ok := f.ingredients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ing.StockBase += quantity
	f.movements = append(f.movements, &entities.StockMovement{
		IngredientID: ing.ID, Quantity: quantity, Reason: reason, ReferenceID: referenceID, Note: note,
	})
	return nil
}

func (f *fakeIngredientRepository) GetStockMovements(_ context.Context, id string, _, _ int) ([]*entities.StockMovement, int64, error) {
	var result []*entities.StockMovement
	for _, m := range f.movements {
		if m.IngredientID.String() == id {
			result = append(result, m)
		}
	}
	return result, int64(len(result)), nil
}

func TestCreateIngredientFormatsStock(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)

	res, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:         "Flour",
		UnitClass:    "mass",
		InitialStock: 2300,
	})
	require.NoError(t, err)

	assert.Equal(t, "g", res.BaseUnit)
	assert.Equal(t, 2300.0, res.StockBase)
	assert.Equal(t, "2 kg 300 g", res.StockDisplay)
}

func TestCreateIngredientRejectsUnknownClass(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepository())

	_, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:         "Flour",
		UnitClass:    "weight",
		InitialStock: 100,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownUnitClass)
}

func TestDeleteIngredientBlockedWhileReferenced(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)

	res, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:         "Sugar",
		UnitClass:    "mass",
		InitialStock: 1000,
	})
	require.NoError(t, err)

	repo.dependents[res.ID] = 2

	err = service.DeleteIngredient(context.Background(), res.ID)
	assert.ErrorIs(t, err, domain.ErrIngredientInUse)
	assert.Contains(t, repo.ingredients, res.ID)
}

func TestAdjustStockRejectsNonPositiveQuantity(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)

	res, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:         "Milk",
		UnitClass:    "volume",
		InitialStock: 500,
	})
	require.NoError(t, err)

	err = service.AdjustStock(context.Background(), res.ID, domain.AdjustStockRequest{Type: "debit", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

// Renaming writes the name column only. A debit landing between the rename's
// read and its write must survive; the rename must never write stock back.
func TestUpdateIngredientDoesNotTouchStock(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)

	res, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:         "Flour",
		UnitClass:    "mass",
		InitialStock: 5000,
	})
	require.NoError(t, err)

	// concurrent debit between any read the rename does and its write
	require.NoError(t, repo.DebitStock(context.Background(), res.ID, 2000, ReasonAdjustment, nil, ""))

	require.NoError(t, service.UpdateIngredient(context.Background(), res.ID, domain.UpdateIngredientRequest{
		Name: "Wheat Flour",
	}))

	assert.Equal(t, "Wheat Flour", repo.ingredients[res.ID].Name)
	assert.Equal(t, 3000.0, repo.ingredients[res.ID].StockBase)
}

// A sequence of debits and credits always lands on initial + credits - debits
// and a debit past the current stock is refused, never applied partially.
func TestDebitCreditSequenceKeepsStockNonNegative(t *testing.T) {
	repo := newFakeIngredientRepository()
	service := NewIngredientService(repo)

	res, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:         "Butter",
		UnitClass:    "mass",
		InitialStock: 1000,
	})
	require.NoError(t, err)

	ctx := context.Background()

	steps := []struct {
		kind     string
		quantity float64
		wantErr  error
	}{
		{"debit", 400, nil},   // 600
		{"debit", 700, domain.ErrInsufficientStock},
		{"credit", 200, nil},  // 800
		{"debit", 800, nil},   // 0
		{"debit", 1, domain.ErrInsufficientStock},
		{"credit", 1500, nil}, // 1500, credits are unbounded
	}

	for _, step := range steps {
		err := service.AdjustStock(ctx, res.ID, domain.AdjustStockRequest{Type: step.kind, Quantity: step.quantity})
		if step.wantErr != nil {
			assert.ErrorIs(t, err, step.wantErr)
		} else {
			assert.NoError(t, err)
		}
		assert.GreaterOrEqual(t, repo.ingredients[res.ID].StockBase, 0.0)
	}

	assert.Equal(t, 1500.0, repo.ingredients[res.ID].StockBase)
}
